package records

// Book is a monograph. Edition is optional; an empty string means no edition was given.
type Book struct {
	Authors   string `yaml:"authors"`
	Title     string `yaml:"title"`
	Edition   string `yaml:"edition"`
	City      string `yaml:"city"`
	Publisher string `yaml:"publisher"`
	Year      int    `yaml:"year" validate:"gt=0"`
	Pages     int    `yaml:"pages" validate:"gt=0"`
}

// NewBook validates b and returns it.
func NewBook(b Book) (Book, error) {
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Validate reports the first field that breaks the record's constraints.
func (b Book) Validate() error {
	return ValidateStruct(KindBook, b)
}

func (Book) Kind() Kind      { return KindBook }
func (b Book) Label() string { return b.Title }

// InternetResource is a page on a website. AccessDate is free text, it is never parsed.
type InternetResource struct {
	Article    string `yaml:"article"`
	Website    string `yaml:"website"`
	Link       string `yaml:"link"`
	AccessDate string `yaml:"access_date"`
}

// NewInternetResource returns r. It has no numeric fields, so it never fails.
func NewInternetResource(r InternetResource) (InternetResource, error) {
	return r, nil
}

// Validate always succeeds: every field is free text.
func (r InternetResource) Validate() error { return nil }

func (InternetResource) Kind() Kind      { return KindInternetResource }
func (r InternetResource) Label() string { return r.Article }

// ArticlesCollection is an article published in a collection of papers.
// Pages is a free text range such as "25-30".
type ArticlesCollection struct {
	Authors         string `yaml:"authors"`
	ArticleTitle    string `yaml:"article_title"`
	CollectionTitle string `yaml:"collection_title"`
	City            string `yaml:"city"`
	Publisher       string `yaml:"publisher"`
	Year            int    `yaml:"year" validate:"gt=0"`
	Pages           string `yaml:"pages"`
}

// NewArticlesCollection validates a and returns it.
func NewArticlesCollection(a ArticlesCollection) (ArticlesCollection, error) {
	if err := a.Validate(); err != nil {
		return ArticlesCollection{}, err
	}
	return a, nil
}

// Validate reports the first field that breaks the record's constraints.
func (a ArticlesCollection) Validate() error {
	return ValidateStruct(KindArticlesCollection, a)
}

func (ArticlesCollection) Kind() Kind      { return KindArticlesCollection }
func (a ArticlesCollection) Label() string { return a.ArticleTitle }

// ThesisAbstract is the author's abstract of a dissertation.
type ThesisAbstract struct {
	Author         string `yaml:"author"`
	ThesisTitle    string `yaml:"thesis_title"`
	Degree         string `yaml:"degree"`           // doctor or candidate
	FieldOfScience string `yaml:"field_of_science"` // abbreviated
	SpecialtyCode  string `yaml:"specialty_code"`
	City           string `yaml:"city"`
	Year           int    `yaml:"year" validate:"gt=0"`
	Pages          int    `yaml:"pages" validate:"gt=0"`
}

// NewThesisAbstract validates t and returns it.
func NewThesisAbstract(t ThesisAbstract) (ThesisAbstract, error) {
	if err := t.Validate(); err != nil {
		return ThesisAbstract{}, err
	}
	return t, nil
}

// Validate reports the first field that breaks the record's constraints.
func (t ThesisAbstract) Validate() error {
	return ValidateStruct(KindThesisAbstract, t)
}

func (ThesisAbstract) Kind() Kind      { return KindThesisAbstract }
func (t ThesisAbstract) Label() string { return t.ThesisTitle }

// NewspaperArticle is an article from a newspaper issue.
type NewspaperArticle struct {
	Authors         string `yaml:"authors"`
	ArticleTitle    string `yaml:"article_title"`
	Newspaper       string `yaml:"newspaper"`
	Year            int    `yaml:"year" validate:"gt=0"`
	PublicationDate string `yaml:"publication_date"`
	ArticleNumber   int    `yaml:"article_number" validate:"gt=0"`
}

// NewNewspaperArticle validates n and returns it.
func NewNewspaperArticle(n NewspaperArticle) (NewspaperArticle, error) {
	if err := n.Validate(); err != nil {
		return NewspaperArticle{}, err
	}
	return n, nil
}

// Validate reports the first field that breaks the record's constraints.
func (n NewspaperArticle) Validate() error {
	return ValidateStruct(KindNewspaperArticle, n)
}

func (NewspaperArticle) Kind() Kind      { return KindNewspaperArticle }
func (n NewspaperArticle) Label() string { return n.ArticleTitle }
