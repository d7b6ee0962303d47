// Package gost renders records according to GOST R 7.0.5-2008.
package gost

import (
	"errors"

	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/styles"
)

// The book template always carries the edition segment, even when the
// edition is empty. APA drops the segment instead.
const (
	bookTemplate               styles.Template = "{authors} {title}. – {edition} изд. – {city}: {publisher}, {year}. – {pages} с."
	internetResourceTemplate   styles.Template = "{article} // {website} URL: {link} (дата обращения: {access_date})."
	articlesCollectionTemplate styles.Template = "{authors} {article_title} // {collection_title}. – {city}: {publisher}, {year}. – С. {pages}."
	thesisAbstractTemplate     styles.Template = "{author}. {thesis_title} [{degree}]: {field_of_science}, {specialty_code} / {city}, {year}. – {pages} с."
	newspaperArticleTemplate   styles.Template = "{authors} {article_title} // {newspaper}. – {year}. – {publication_date}. – № {article_number}."
)

// Register adds the GOST renderers for every record kind to reg.
func Register(reg *styles.Registry) error {
	return errors.Join(
		reg.Register(styles.GOST, records.KindBook, styles.FactoryOf(NewBook)),
		reg.Register(styles.GOST, records.KindInternetResource, styles.FactoryOf(NewInternetResource)),
		reg.Register(styles.GOST, records.KindArticlesCollection, styles.FactoryOf(NewCollectionArticle)),
		reg.Register(styles.GOST, records.KindThesisAbstract, styles.FactoryOf(NewThesisAbstract)),
		reg.Register(styles.GOST, records.KindNewspaperArticle, styles.FactoryOf(NewNewspaperArticle)),
	)
}

// Book renders a book.
type Book struct {
	styles.Bound[records.Book]
}

// NewBook binds rec, which must be a valid records.Book.
func NewBook(rec records.Record) (*Book, error) {
	r := &Book{}
	if err := r.Bind(styles.GOST, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Book) Render() string {
	return r.Memoize(func(b records.Book) string {
		return bookTemplate.Fill(
			"authors", b.Authors,
			"title", b.Title,
			"edition", b.Edition,
			"city", b.City,
			"publisher", b.Publisher,
			"year", styles.Itoa(b.Year),
			"pages", styles.Itoa(b.Pages),
		)
	})
}

// InternetResource renders a web page with its URL and access date.
type InternetResource struct {
	styles.Bound[records.InternetResource]
}

// NewInternetResource binds rec, which must be a valid records.InternetResource.
func NewInternetResource(rec records.Record) (*InternetResource, error) {
	r := &InternetResource{}
	if err := r.Bind(styles.GOST, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InternetResource) Render() string {
	return r.Memoize(func(i records.InternetResource) string {
		return internetResourceTemplate.Fill(
			"article", i.Article,
			"website", i.Website,
			"link", i.Link,
			"access_date", i.AccessDate,
		)
	})
}

// CollectionArticle renders an article from a collection of papers.
type CollectionArticle struct {
	styles.Bound[records.ArticlesCollection]
}

// NewCollectionArticle binds rec, which must be a valid records.ArticlesCollection.
func NewCollectionArticle(rec records.Record) (*CollectionArticle, error) {
	r := &CollectionArticle{}
	if err := r.Bind(styles.GOST, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CollectionArticle) Render() string {
	return r.Memoize(func(a records.ArticlesCollection) string {
		return articlesCollectionTemplate.Fill(
			"authors", a.Authors,
			"article_title", a.ArticleTitle,
			"collection_title", a.CollectionTitle,
			"city", a.City,
			"publisher", a.Publisher,
			"year", styles.Itoa(a.Year),
			"pages", a.Pages,
		)
	})
}

// ThesisAbstract renders a thesis abstract.
type ThesisAbstract struct {
	styles.Bound[records.ThesisAbstract]
}

// NewThesisAbstract binds rec, which must be a valid records.ThesisAbstract.
func NewThesisAbstract(rec records.Record) (*ThesisAbstract, error) {
	r := &ThesisAbstract{}
	if err := r.Bind(styles.GOST, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ThesisAbstract) Render() string {
	return r.Memoize(func(t records.ThesisAbstract) string {
		return thesisAbstractTemplate.Fill(
			"author", t.Author,
			"thesis_title", t.ThesisTitle,
			"degree", t.Degree,
			"field_of_science", t.FieldOfScience,
			"specialty_code", t.SpecialtyCode,
			"city", t.City,
			"year", styles.Itoa(t.Year),
			"pages", styles.Itoa(t.Pages),
		)
	})
}

// NewspaperArticle renders a newspaper article.
type NewspaperArticle struct {
	styles.Bound[records.NewspaperArticle]
}

// NewNewspaperArticle binds rec, which must be a valid records.NewspaperArticle.
func NewNewspaperArticle(rec records.Record) (*NewspaperArticle, error) {
	r := &NewspaperArticle{}
	if err := r.Bind(styles.GOST, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *NewspaperArticle) Render() string {
	return r.Memoize(func(n records.NewspaperArticle) string {
		return newspaperArticleTemplate.Fill(
			"authors", n.Authors,
			"article_title", n.ArticleTitle,
			"newspaper", n.Newspaper,
			"year", styles.Itoa(n.Year),
			"publication_date", n.PublicationDate,
			"article_number", styles.Itoa(n.ArticleNumber),
		)
	})
}
