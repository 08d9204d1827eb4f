package catalog

import (
	"encoding/json"
	"math"
	"strconv"
)

// ProductRecord is the normalized catalog record for one barcode. It is
// read-only once fetched; the analyzer and the presentation layer never
// mutate it.
type ProductRecord struct {
	Barcode         string             `json:"barcode"`
	Name            string             `json:"name"`
	Brands          string             `json:"brands,omitempty"`
	ImageURL        string             `json:"image_url,omitempty"`
	IngredientsText string             `json:"ingredients_text,omitempty"`
	Nutriments      map[string]float64 `json:"nutriments,omitempty"`
	ServingSize     string             `json:"serving_size,omitempty"`
	ServingQuantity float64            `json:"serving_quantity,omitempty"`
	NutritionGrade  string             `json:"nutrition_grade,omitempty"`
}

// Nutrient returns the per-100g value for a nutriment key such as
// "sugar_100g".
func (p *ProductRecord) Nutrient(key string) (float64, bool) {
	v, ok := p.Nutriments[key]
	return v, ok
}

// HasData reports whether the record carries anything the analyzer can work
// with.
func (p *ProductRecord) HasData() bool {
	return p.IngredientsText != "" || len(p.Nutriments) > 0
}

// ProductSummary is one hit of a free-text catalog search.
type ProductSummary struct {
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	Brands         string `json:"brands,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	NutritionGrade string `json:"nutrition_grade,omitempty"`
}

// SearchResult holds one page of catalog search hits.
type SearchResult struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Products []ProductSummary `json:"products"`
}

// productResponse is the raw catalog payload for a product lookup. A status
// of 0 means the barcode is not in the catalog.
type productResponse struct {
	Status        int             `json:"status"`
	StatusVerbose string          `json:"status_verbose"`
	Code          string          `json:"code"`
	Product       *productPayload `json:"product"`
}

// productPayload mirrors the catalog's product object. Nutriment and serving
// values arrive as numbers or strings depending on the record's age, so they
// are decoded loosely and coerced afterwards.
type productPayload struct {
	Code            string                 `json:"code"`
	ProductName     string                 `json:"product_name"`
	Brands          string                 `json:"brands"`
	ImageURL        string                 `json:"image_url"`
	IngredientsText string                 `json:"ingredients_text"`
	Nutriments      map[string]interface{} `json:"nutriments"`
	ServingSize     string                 `json:"serving_size"`
	ServingQuantity interface{}            `json:"serving_quantity"`
	NutritionGrades string                 `json:"nutrition_grades"`
}

// searchResponse is the raw catalog payload for a text search.
type searchResponse struct {
	Count    int              `json:"count"`
	Page     interface{}      `json:"page"`
	PageSize interface{}      `json:"page_size"`
	Products []productPayload `json:"products"`
}

// toRecord normalizes a raw payload into a ProductRecord keyed by barcode.
func (p *productPayload) toRecord(barcode string) *ProductRecord {
	rec := &ProductRecord{
		Barcode:         barcode,
		Name:            p.ProductName,
		Brands:          p.Brands,
		ImageURL:        p.ImageURL,
		IngredientsText: p.IngredientsText,
		ServingSize:     p.ServingSize,
		NutritionGrade:  p.NutritionGrades,
	}
	if qty, ok := coerceFloat(p.ServingQuantity); ok {
		rec.ServingQuantity = qty
	}
	if len(p.Nutriments) > 0 {
		rec.Nutriments = make(map[string]float64, len(p.Nutriments))
		for key, raw := range p.Nutriments {
			if v, ok := coerceFloat(raw); ok {
				rec.Nutriments[key] = v
			}
		}
	}
	return rec
}

// toSummary normalizes a raw search hit.
func (p *productPayload) toSummary() ProductSummary {
	return ProductSummary{
		Barcode:        p.Code,
		Name:           p.ProductName,
		Brands:         p.Brands,
		ImageURL:       p.ImageURL,
		NutritionGrade: p.NutritionGrades,
	}
}

// coerceFloat converts the catalog's number-or-string values to float64.
func coerceFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// coerceInt converts page counters that may arrive as numbers or strings.
func coerceInt(v interface{}) int {
	f, ok := coerceFloat(v)
	if !ok {
		return 0
	}
	return int(f)
}
