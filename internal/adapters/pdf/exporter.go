package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"tripforge/internal/domain"
)

// Exporter renders a trip view into a multi-page PDF travel guide:
// cover, trip overview, weather summary, value scores, per-day
// activity tables and a packing checklist. It treats the view as
// read-only and recomputes every summary figure from the structures.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

var packingList = []string{
	"Passport & Travel Documents",
	"Travel Insurance Information",
	"Credit Cards & Cash",
	"Phone Charger & Power Adapter",
	"Comfortable Walking Shoes",
	"Weather-appropriate Clothing",
	"Sunscreen & Sunglasses",
	"Camera & Accessories",
	"Medications & First Aid",
	"Reusable Water Bottle",
}

func (e *Exporter) Guide(v domain.TripView) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	// core fonts are cp1252; activity titles carry accented characters
	tr := doc.UnicodeTranslatorFromDescriptor("")

	e.coverPage(doc, tr, v)
	e.overviewPage(doc, tr, v)
	e.itineraryPages(doc, tr, v)
	e.packingPage(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render guide: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) coverPage(doc *gofpdf.Fpdf, tr func(string) string, v domain.TripView) {
	doc.AddPage()
	doc.Ln(60)
	doc.SetFont("Arial", "B", 24)
	doc.CellFormat(0, 14, tr("Your Travel Guide to "+v.Request.Destination), "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 12)
	doc.CellFormat(0, 10, fmt.Sprintf("%d-Day Personalized Itinerary", v.Request.Days), "", 1, "C", false, 0, "")
	doc.Ln(10)
	doc.CellFormat(0, 8, tr("Departing from: "+v.Request.Departure), "", 1, "C", false, 0, "")
	if v.Request.StartDate != "" {
		doc.CellFormat(0, 8, "Travel Dates: "+v.Request.StartDate, "", 1, "C", false, 0, "")
	}
}

func (e *Exporter) overviewPage(doc *gofpdf.Fpdf, tr func(string) string, v domain.TripView) {
	doc.AddPage()

	heading(doc, "Trip Overview")
	rows := [][2]string{
		{"Destination", tr(v.Request.Destination)},
		{"Duration", fmt.Sprintf("%d days", v.Request.Days)},
		{"Departure", tr(v.Request.Departure)},
		{"Budget Level", fmt.Sprintf("$%d/day", v.Score.AvgDailyCost)},
		{"Total Activities", fmt.Sprintf("%d", v.Itinerary.ActivityCount())},
		{"Estimated Total Cost", fmt.Sprintf("$%d", v.Itinerary.TotalCost())},
	}
	kvTable(doc, rows, 60, 110)
	doc.Ln(6)

	heading(doc, fmt.Sprintf("%d-Day Weather Forecast", len(v.Weather)))
	doc.SetFont("Arial", "", 11)
	doc.CellFormat(0, 8, weatherSummary(v.Weather), "", 1, "L", false, 0, "")
	doc.Ln(6)

	heading(doc, "Value Score Analysis")
	kvTable(doc, [][2]string{
		{"Overall Value", fmt.Sprintf("%.1f/10", v.Score.Overall)},
		{"Cost of Living", fmt.Sprintf("%.1f/10", v.Score.CostOfLiving)},
		{"Exchange Rate", fmt.Sprintf("%.1f/10", v.Score.ExchangeRate)},
		{"Value Rating", fmt.Sprintf("%.1f/10", v.Score.ValueRating)},
		{"Est. Daily Cost", fmt.Sprintf("$%d", v.Score.AvgDailyCost)},
	}, 85, 85)
}

func (e *Exporter) itineraryPages(doc *gofpdf.Fpdf, tr func(string) string, v domain.TripView) {
	doc.AddPage()
	heading(doc, "Detailed Daily Itinerary")

	for _, day := range v.Itinerary {
		// keep each day header with at least a couple of rows
		if doc.GetY() > 230 {
			doc.AddPage()
		}
		doc.SetFont("Arial", "B", 13)
		doc.CellFormat(0, 9, fmt.Sprintf("Day %d: %s", day.Day, day.Theme), "", 1, "L", false, 0, "")
		doc.SetFont("Arial", "I", 10)
		doc.CellFormat(0, 6, fmt.Sprintf("Walking Distance: %s | Daily Cost: $%d", day.WalkingDistance, day.ActivitiesCost()), "", 1, "L", false, 0, "")
		doc.Ln(2)

		doc.SetFillColor(79, 70, 229)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(40, 8, "Time", "1", 0, "L", true, 0, "")
		doc.CellFormat(115, 8, "Activity", "1", 0, "L", true, 0, "")
		doc.CellFormat(25, 8, "Cost", "1", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.SetFillColor(249, 250, 251)

		for _, act := range day.Activities {
			cost := "Free"
			if act.Cost > 0 {
				cost = fmt.Sprintf("$%d", act.Cost)
			}
			doc.SetFont("Arial", "", 9)
			doc.CellFormat(40, 7, act.Time, "LR", 0, "L", true, 0, "")
			doc.SetFont("Arial", "B", 9)
			doc.CellFormat(115, 7, tr(act.Title), "LR", 0, "L", true, 0, "")
			doc.SetFont("Arial", "", 9)
			doc.CellFormat(25, 7, cost, "LR", 1, "L", true, 0, "")

			doc.CellFormat(40, 6, "", "LRB", 0, "L", true, 0, "")
			doc.SetFont("Arial", "I", 8)
			doc.CellFormat(115, 6, tr(act.Description), "LRB", 0, "L", true, 0, "")
			doc.CellFormat(25, 6, "", "LRB", 1, "L", true, 0, "")
		}
		doc.Ln(6)
	}
}

func (e *Exporter) packingPage(doc *gofpdf.Fpdf) {
	doc.AddPage()
	heading(doc, "Packing List")
	doc.SetFont("Arial", "", 11)
	for _, item := range packingList {
		doc.CellFormat(0, 8, "[ ] "+item, "", 1, "L", false, 0, "")
	}
}

func heading(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Arial", "B", 16)
	doc.SetTextColor(31, 41, 55)
	doc.CellFormat(0, 11, title, "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(1)
}

func kvTable(doc *gofpdf.Fpdf, rows [][2]string, keyW, valW float64) {
	doc.SetFillColor(240, 253, 244)
	for _, row := range rows {
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(keyW, 8, row[0], "1", 0, "L", true, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.CellFormat(valW, 8, row[1], "1", 1, "L", false, 0, "")
	}
}

// weatherSummary recomputes the forecast digest; nothing is
// pre-aggregated upstream.
func weatherSummary(ws []domain.WeatherDay) string {
	if len(ws) == 0 {
		return "No forecast available"
	}
	tempSum, rainy := 0, 0
	for _, w := range ws {
		tempSum += w.Temp
		if w.Condition == domain.ConditionRainy {
			rainy++
		}
	}
	return fmt.Sprintf("Average Temperature: %d F | Rainy Days: %d", tempSum/len(ws), rainy)
}
