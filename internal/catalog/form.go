package catalog

import (
	"strconv"
	"strings"
)

// Field is one submitted form value. Set distinguishes an absent key from an
// empty one so update can merge only the fields the client sent.
type Field struct {
	Value string
	Set   bool
}

// Int coerces the field per the fixed type table: absent or empty input is 0,
// anything non-numeric aborts the operation with an InvalidInputError.
func (f Field) Int(name string) (int, error) {
	raw := strings.TrimSpace(f.Value)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidInputError{Field: name, Value: f.Value}
	}
	return n, nil
}

// Float coerces the field to a float64, with the same empty-is-zero rule.
func (f Field) Float(name string) (float64, error) {
	raw := strings.TrimSpace(f.Value)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidInputError{Field: name, Value: f.Value}
	}
	return v, nil
}

func (f Field) Text() string {
	return strings.TrimSpace(f.Value)
}

// ListField holds a repeated form value such as images[] or features[].
type ListField struct {
	Values []string
	Set    bool
}

// Clean trims every entry, drops the ones that end up empty and preserves
// submission order. The result is never nil so it marshals as [].
func (f ListField) Clean() []string {
	out := make([]string, 0, len(f.Values))
	for _, v := range f.Values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProductForm is the typed intermediate record extracted from a submission
// before any coercion or validation runs.
type ProductForm struct {
	ID             Field
	Number         Field
	Name           Field
	Category       Field
	Price          Field
	OriginalPrice  Field
	Image          Field
	Link           Field
	Rating         Field
	Reviews        Field
	Ribuan         Field
	Stock          Field
	Description    Field
	Specifications Field
	Images         ListField
	Features       ListField
}

// Product applies the full coercion table and returns the record that a
// successful add would persist. id and number are passed in because the add
// path parses and validates them before the duplicate checks run.
func (f ProductForm) Product(id, number int) (Product, error) {
	p := Product{
		ID:             id,
		Number:         number,
		Name:           f.Name.Text(),
		Category:       f.Category.Text(),
		Image:          f.Image.Text(),
		Images:         f.Images.Clean(),
		Link:           f.Link.Text(),
		Ribuan:         f.Ribuan.Text(),
		Description:    f.Description.Text(),
		Specifications: f.Specifications.Text(),
		Features:       f.Features.Clean(),
	}

	var err error
	if p.Price, err = f.Price.Int("price"); err != nil {
		return Product{}, err
	}
	if p.OriginalPrice, err = f.OriginalPrice.Int("originalPrice"); err != nil {
		return Product{}, err
	}
	if p.Rating, err = f.Rating.Float("rating"); err != nil {
		return Product{}, err
	}
	if p.Reviews, err = f.Reviews.Int("reviews"); err != nil {
		return Product{}, err
	}
	if p.Stock, err = f.Stock.Int("stock"); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Merge overwrites the fields present in the form on a copy of the stored
// record. Lists are replaced wholesale, never appended. Coercion failures
// leave the stored record untouched.
func (f ProductForm) Merge(stored Product) (Product, error) {
	p := stored

	var err error
	if f.Number.Set {
		if p.Number, err = f.Number.Int("number"); err != nil {
			return Product{}, err
		}
	}
	if f.Price.Set {
		if p.Price, err = f.Price.Int("price"); err != nil {
			return Product{}, err
		}
	}
	if f.OriginalPrice.Set {
		if p.OriginalPrice, err = f.OriginalPrice.Int("originalPrice"); err != nil {
			return Product{}, err
		}
	}
	if f.Rating.Set {
		if p.Rating, err = f.Rating.Float("rating"); err != nil {
			return Product{}, err
		}
	}
	if f.Reviews.Set {
		if p.Reviews, err = f.Reviews.Int("reviews"); err != nil {
			return Product{}, err
		}
	}
	if f.Stock.Set {
		if p.Stock, err = f.Stock.Int("stock"); err != nil {
			return Product{}, err
		}
	}

	if f.Name.Set {
		p.Name = f.Name.Text()
	}
	if f.Category.Set {
		p.Category = f.Category.Text()
	}
	if f.Image.Set {
		p.Image = f.Image.Text()
	}
	if f.Link.Set {
		p.Link = f.Link.Text()
	}
	if f.Ribuan.Set {
		p.Ribuan = f.Ribuan.Text()
	}
	if f.Description.Set {
		p.Description = f.Description.Text()
	}
	if f.Specifications.Set {
		p.Specifications = f.Specifications.Text()
	}

	if f.Images.Set {
		p.Images = f.Images.Clean()
	}
	if f.Features.Set {
		p.Features = f.Features.Clean()
	}

	return p, nil
}
