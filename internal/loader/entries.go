package loader

import (
	"github.com/lepinkainen/biblio/internal/records"
)

// The entry types mirror the record types with the text fields the source
// file must provide. Numeric rules stay with the records package.

type bookEntry struct {
	Authors   string `yaml:"authors" validate:"required"`
	Title     string `yaml:"title" validate:"required"`
	Edition   string `yaml:"edition"`
	City      string `yaml:"city" validate:"required"`
	Publisher string `yaml:"publisher" validate:"required"`
	Year      int    `yaml:"year"`
	Pages     int    `yaml:"pages"`
}

func (e bookEntry) record() (records.Record, error) {
	rec, err := records.NewBook(records.Book(e))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type internetResourceEntry struct {
	Article    string `yaml:"article" validate:"required"`
	Website    string `yaml:"website" validate:"required"`
	Link       string `yaml:"link" validate:"required"`
	AccessDate string `yaml:"access_date" validate:"required"`
}

func (e internetResourceEntry) record() (records.Record, error) {
	rec, err := records.NewInternetResource(records.InternetResource(e))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type articlesCollectionEntry struct {
	Authors         string `yaml:"authors" validate:"required"`
	ArticleTitle    string `yaml:"article_title" validate:"required"`
	CollectionTitle string `yaml:"collection_title" validate:"required"`
	City            string `yaml:"city" validate:"required"`
	Publisher       string `yaml:"publisher" validate:"required"`
	Year            int    `yaml:"year"`
	Pages           string `yaml:"pages" validate:"required"`
}

func (e articlesCollectionEntry) record() (records.Record, error) {
	rec, err := records.NewArticlesCollection(records.ArticlesCollection(e))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type thesisAbstractEntry struct {
	Author         string `yaml:"author" validate:"required"`
	ThesisTitle    string `yaml:"thesis_title" validate:"required"`
	Degree         string `yaml:"degree" validate:"required"`
	FieldOfScience string `yaml:"field_of_science" validate:"required"`
	SpecialtyCode  string `yaml:"specialty_code" validate:"required"`
	City           string `yaml:"city" validate:"required"`
	Year           int    `yaml:"year"`
	Pages          int    `yaml:"pages"`
}

func (e thesisAbstractEntry) record() (records.Record, error) {
	rec, err := records.NewThesisAbstract(records.ThesisAbstract(e))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type newspaperArticleEntry struct {
	Authors         string `yaml:"authors" validate:"required"`
	ArticleTitle    string `yaml:"article_title" validate:"required"`
	Newspaper       string `yaml:"newspaper" validate:"required"`
	Year            int    `yaml:"year"`
	PublicationDate string `yaml:"publication_date" validate:"required"`
	ArticleNumber   int    `yaml:"article_number"`
}

func (e newspaperArticleEntry) record() (records.Record, error) {
	rec, err := records.NewNewspaperArticle(records.NewspaperArticle(e))
	if err != nil {
		return nil, err
	}
	return rec, nil
}
