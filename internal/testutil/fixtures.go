package testutil

import "github.com/lepinkainen/biblio/internal/records"

// BookFixture returns the canonical book record used across tests.
func BookFixture() records.Book {
	return records.Book{
		Authors:   "Иванов И.М., Петров С.Н.",
		Title:     "Наука как искусство",
		Edition:   "3-е",
		City:      "СПб.",
		Publisher: "Просвещение",
		Year:      2020,
		Pages:     999,
	}
}

// InternetResourceFixture returns the canonical internet resource record.
func InternetResourceFixture() records.InternetResource {
	return records.InternetResource{
		Article:    "Наука как искусство",
		Website:    "Ведомости",
		Link:       "https://www.vedomosti.ru",
		AccessDate: "01.01.2021",
	}
}

// ArticlesCollectionFixture returns the canonical collection article record.
func ArticlesCollectionFixture() records.ArticlesCollection {
	return records.ArticlesCollection{
		Authors:         "Иванов И.М., Петров С.Н.",
		ArticleTitle:    "Наука как искусство",
		CollectionTitle: "Сборник научных трудов",
		City:            "СПб.",
		Publisher:       "АСТ",
		Year:            2020,
		Pages:           "25-30",
	}
}

// ThesisAbstractFixture returns the canonical thesis abstract record.
func ThesisAbstractFixture() records.ThesisAbstract {
	return records.ThesisAbstract{
		Author:         "Иванов И.М.",
		ThesisTitle:    "Наука как искусство",
		Degree:         "д-р. / канд.",
		FieldOfScience: "экон.",
		SpecialtyCode:  "01.01.01",
		City:           "СПб.",
		Year:           2020,
		Pages:          199,
	}
}

// NewspaperArticleFixture returns the canonical newspaper article record.
func NewspaperArticleFixture() records.NewspaperArticle {
	return records.NewspaperArticle{
		Authors:         "Иванов И.М., Петров С.Н.",
		ArticleTitle:    "Наука как искусство",
		Newspaper:       "Южный Урал",
		Year:            1980,
		PublicationDate: "01.10",
		ArticleNumber:   5,
	}
}

// MixedFixtures returns one record of every kind in the order
// book, internet resource, articles collection, thesis abstract, newspaper article.
func MixedFixtures() []records.Record {
	return []records.Record{
		BookFixture(),
		InternetResourceFixture(),
		ArticlesCollectionFixture(),
		ThesisAbstractFixture(),
		NewspaperArticleFixture(),
	}
}
