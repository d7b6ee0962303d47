// Package apa renders records in the APA-like author-date style.
package apa

import (
	"errors"

	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/styles"
)

const (
	bookTemplate               styles.Template = "{authors} ({year}) {title} ({edition}) {city}: {publisher}, {pages} с."
	internetResourceTemplate   styles.Template = "{website} ({access_date}) {article} {link})"
	articlesCollectionTemplate styles.Template = "{authors} ({year}) {article_title}, {collection_title} {city}: {publisher}, {pages} с."
	thesisAbstractTemplate     styles.Template = "{author} ({year}). {thesis_title}. {degree}. {field_of_science}. {city}, {year}. {pages}."
	newspaperArticleTemplate   styles.Template = "{authors} ({year}). {article_title}. {newspaper}, {publication_date}, {article_number}."
)

// Register adds the APA renderers for every record kind to reg.
func Register(reg *styles.Registry) error {
	return errors.Join(
		reg.Register(styles.APA, records.KindBook, styles.FactoryOf(NewBook)),
		reg.Register(styles.APA, records.KindInternetResource, styles.FactoryOf(NewInternetResource)),
		reg.Register(styles.APA, records.KindArticlesCollection, styles.FactoryOf(NewArticlesCollection)),
		reg.Register(styles.APA, records.KindThesisAbstract, styles.FactoryOf(NewThesisAbstract)),
		reg.Register(styles.APA, records.KindNewspaperArticle, styles.FactoryOf(NewNewspaperArticle)),
	)
}

// Book renders a book.
type Book struct {
	styles.Bound[records.Book]
}

// NewBook binds rec, which must be a records.Book.
func NewBook(rec records.Record) (*Book, error) {
	r := &Book{}
	if err := r.Bind(styles.APA, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Book) Render() string {
	return r.Memoize(func(b records.Book) string {
		return bookTemplate.Fill(
			"authors", b.Authors,
			"year", styles.Itoa(b.Year),
			"title", b.Title,
			"edition", edition(b.Edition),
			"city", b.City,
			"publisher", b.Publisher,
			"pages", styles.Itoa(b.Pages),
		)
	})
}

// edition formats the optional edition segment; it is empty when no edition is known.
func edition(value string) string {
	if value == "" {
		return ""
	}
	return value + " изд. – "
}

// InternetResource renders a web page.
type InternetResource struct {
	styles.Bound[records.InternetResource]
}

// NewInternetResource binds rec, which must be a records.InternetResource.
func NewInternetResource(rec records.Record) (*InternetResource, error) {
	r := &InternetResource{}
	if err := r.Bind(styles.APA, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InternetResource) Render() string {
	return r.Memoize(func(i records.InternetResource) string {
		return internetResourceTemplate.Fill(
			"website", i.Website,
			"access_date", i.AccessDate,
			"article", i.Article,
			"link", i.Link,
		)
	})
}

// ArticlesCollection renders an article from a collection.
type ArticlesCollection struct {
	styles.Bound[records.ArticlesCollection]
}

// NewArticlesCollection binds rec, which must be a records.ArticlesCollection.
func NewArticlesCollection(rec records.Record) (*ArticlesCollection, error) {
	r := &ArticlesCollection{}
	if err := r.Bind(styles.APA, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ArticlesCollection) Render() string {
	return r.Memoize(func(a records.ArticlesCollection) string {
		return articlesCollectionTemplate.Fill(
			"authors", a.Authors,
			"year", styles.Itoa(a.Year),
			"article_title", a.ArticleTitle,
			"collection_title", a.CollectionTitle,
			"city", a.City,
			"publisher", a.Publisher,
			"pages", a.Pages,
		)
	})
}

// ThesisAbstract renders a thesis abstract.
type ThesisAbstract struct {
	styles.Bound[records.ThesisAbstract]
}

// NewThesisAbstract binds rec, which must be a records.ThesisAbstract.
func NewThesisAbstract(rec records.Record) (*ThesisAbstract, error) {
	r := &ThesisAbstract{}
	if err := r.Bind(styles.APA, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ThesisAbstract) Render() string {
	return r.Memoize(func(t records.ThesisAbstract) string {
		return thesisAbstractTemplate.Fill(
			"author", t.Author,
			"year", styles.Itoa(t.Year),
			"thesis_title", t.ThesisTitle,
			"degree", t.Degree,
			"field_of_science", t.FieldOfScience,
			"city", t.City,
			"pages", styles.Itoa(t.Pages),
		)
	})
}

// NewspaperArticle renders a newspaper article.
type NewspaperArticle struct {
	styles.Bound[records.NewspaperArticle]
}

// NewNewspaperArticle binds rec, which must be a records.NewspaperArticle.
func NewNewspaperArticle(rec records.Record) (*NewspaperArticle, error) {
	r := &NewspaperArticle{}
	if err := r.Bind(styles.APA, rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *NewspaperArticle) Render() string {
	return r.Memoize(func(n records.NewspaperArticle) string {
		return newspaperArticleTemplate.Fill(
			"authors", n.Authors,
			"year", styles.Itoa(n.Year),
			"article_title", n.ArticleTitle,
			"newspaper", n.Newspaper,
			"publication_date", n.PublicationDate,
			"article_number", styles.Itoa(n.ArticleNumber),
		)
	})
}
