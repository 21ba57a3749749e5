package agronomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const (
	sheetCrops  = "Crops"
	sheetPests  = "Pests"
	sheetPrices = "Prices"
)

// tableSet holds rows read from one source. A nil slice means the source
// did not carry that table and the built-in rows are used instead.
type tableSet struct {
	Crops  []CropProfile `yaml:"crops"`
	Pests  []PestProfile `yaml:"pests"`
	Prices []PriceQuote  `yaml:"prices"`
}

// LoadTables reads reference tables from a YAML file, an XLSX workbook or
// a directory of CSV files.
func LoadTables(path string) (*Tables, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	var set tableSet
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case st.IsDir():
		set, err = readCSVDir(path)
	case ext == ".yaml" || ext == ".yml":
		set, err = readYAML(path)
	case ext == ".xlsx":
		set, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported table source %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return set.build()
}

func (s tableSet) build() (*Tables, error) {
	crops, pests, prices := s.Crops, s.Pests, s.Prices
	if crops == nil {
		crops = defaultCrops
	}
	if pests == nil {
		pests = defaultPests
	}
	if prices == nil {
		known := map[string]bool{}
		for _, c := range crops {
			known[normKey(c.Key)] = true
		}
		for _, q := range defaultPrices {
			if known[q.Crop] {
				prices = append(prices, q)
			}
		}
	}
	return NewTables(crops, pests, prices)
}

func readYAML(path string) (tableSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return tableSet{}, err
	}
	var set tableSet
	if err := yaml.Unmarshal(b, &set); err != nil {
		return tableSet{}, err
	}
	return set, nil
}

func readXLSX(path string) (tableSet, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return tableSet{}, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	rows := func(name string) ([][]string, bool, error) {
		if !slices.Contains(sheets, name) {
			return nil, false, nil
		}
		r, err := x.GetRows(name)
		return r, true, err
	}

	var set tableSet
	if r, ok, err := rows(sheetCrops); err != nil {
		return set, err
	} else if ok {
		if set.Crops, err = parseCropRows(sheetCrops, r); err != nil {
			return set, err
		}
	}
	if r, ok, err := rows(sheetPests); err != nil {
		return set, err
	} else if ok {
		if set.Pests, err = parsePestRows(r); err != nil {
			return set, err
		}
	}
	if r, ok, err := rows(sheetPrices); err != nil {
		return set, err
	} else if ok {
		if set.Prices, err = parsePriceRows(sheetPrices, r); err != nil {
			return set, err
		}
	}
	return set, nil
}

func readCSVDir(dir string) (tableSet, error) {
	read := func(name string) ([][]string, bool, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		defer f.Close()
		cr := csv.NewReader(f)
		cr.FieldsPerRecord = -1
		var out [][]string
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, true, fmt.Errorf("%s: %w", name, err)
			}
			out = append(out, rec)
		}
		return out, true, nil
	}

	var set tableSet
	if r, ok, err := read("crops.csv"); err != nil {
		return set, err
	} else if ok {
		if set.Crops, err = parseCropRows("crops.csv", r); err != nil {
			return set, err
		}
	}
	if r, ok, err := read("pests.csv"); err != nil {
		return set, err
	} else if ok {
		if set.Pests, err = parsePestRows(r); err != nil {
			return set, err
		}
	}
	if r, ok, err := read("prices.csv"); err != nil {
		return set, err
	} else if ok {
		if set.Prices, err = parsePriceRows("prices.csv", r); err != nil {
			return set, err
		}
	}
	return set, nil
}

// header maps normalized column names to indexes so that "Water
// Requirement", "water_requirement" and "waterrequirement" all match.
type header map[string]int

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	for _, r := range []string{" ", "-", "_"} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

func newHeader(row []string) header {
	h := header{}
	for i, c := range row {
		h[normHeader(c)] = i
	}
	return h
}

func (h header) find(keys ...string) int {
	for _, k := range keys {
		if i, ok := h[normHeader(k)]; ok {
			return i
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cellError names the table position of a value that failed to parse.
// Rows count from 1 with the header on row 1.
type cellError struct {
	Source string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *cellError) Error() string {
	return fmt.Sprintf("%s row %d column %s: %q: %v", e.Source, e.Row, e.Column, e.Value, e.Err)
}

func (e *cellError) Unwrap() error { return e.Err }

// rowReader parses numeric cells of one row. An empty cell reads as zero;
// any other text that is not a number records the first error.
type rowReader struct {
	source string
	row    int
	header []string
	rec    []string
	err    error
}

func (r *rowReader) fail(idx int, v string, err error) {
	if r.err != nil {
		return
	}
	col := strconv.Itoa(idx + 1)
	if idx < len(r.header) {
		col = strings.TrimSpace(r.header[idx])
	}
	r.err = &cellError{Source: r.source, Row: r.row, Column: col, Value: v, Err: err}
}

func (r *rowReader) intAt(idx int) int {
	v := cell(r.rec, idx)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(idx, v, errors.New("not an integer"))
	}
	return n
}

func (r *rowReader) floatAt(idx int) float64 {
	v := cell(r.rec, idx)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(idx, v, errors.New("not a number"))
		return 0
	}
	return f
}

// History is written as "date=price" entries joined by ";".
func (r *rowReader) historyAt(idx int) []PricePoint {
	var out []PricePoint
	for _, item := range splitList(cell(r.rec, idx)) {
		d, p, ok := strings.Cut(item, "=")
		if !ok {
			r.fail(idx, item, errors.New("history entry must be date=price"))
			continue
		}
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			r.fail(idx, p, errors.New("not a number"))
			continue
		}
		out = append(out, PricePoint{Date: strings.TrimSpace(d), Price: f})
	}
	return out
}

func parseCropRows(source string, rows [][]string) ([]CropProfile, error) {
	if len(rows) == 0 {
		return []CropProfile{}, nil
	}
	h := newHeader(rows[0])
	cKey := h.find("key", "crop", "id")
	cName := h.find("name")
	cCat := h.find("category", "type")
	cSeason := h.find("season", "growing_season")
	cWater := h.find("water", "water_requirement", "waterneed")
	cMin := h.find("maturity_min_days", "min_days", "maturitymin")
	cMax := h.find("maturity_max_days", "max_days", "maturitymax")
	if cKey == -1 || cSeason == -1 || cWater == -1 {
		return nil, fmt.Errorf("crop table missing required columns, found %v; need key, season, water", rows[0])
	}

	out := []CropProfile{}
	for i, rec := range rows[1:] {
		if cell(rec, cKey) == "" {
			continue
		}
		r := rowReader{source: source, row: i + 2, header: rows[0], rec: rec}
		c := CropProfile{
			Key:             cell(rec, cKey),
			Name:            cell(rec, cName),
			Category:        cell(rec, cCat),
			Season:          Season(cell(rec, cSeason)),
			Water:           WaterRequirement(cell(rec, cWater)),
			MaturityMinDays: r.intAt(cMin),
			MaturityMaxDays: r.intAt(cMax),
		}
		if r.err != nil {
			return nil, r.err
		}
		if c.Name == "" {
			c.Name = c.Key
		}
		out = append(out, c)
	}
	return out, nil
}

// Treatments are written as "method|dosage|frequency" entries joined by ";".
func parseTreatments(s string) []Treatment {
	var out []Treatment
	for _, item := range splitList(s) {
		parts := strings.SplitN(item, "|", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		out = append(out, Treatment{
			Method:    strings.TrimSpace(parts[0]),
			Dosage:    strings.TrimSpace(parts[1]),
			Frequency: strings.TrimSpace(parts[2]),
		})
	}
	return out
}

func formatTreatments(ts []Treatment) string {
	items := make([]string, len(ts))
	for i, t := range ts {
		items[i] = t.Method + "|" + t.Dosage + "|" + t.Frequency
	}
	return strings.Join(items, ";")
}

func parsePestRows(rows [][]string) ([]PestProfile, error) {
	if len(rows) == 0 {
		return []PestProfile{}, nil
	}
	h := newHeader(rows[0])
	cKey := h.find("key", "pest", "id")
	cName := h.find("name")
	cCrops := h.find("affected_crops", "crops")
	cSym := h.find("symptoms", "symptom")
	cTreat := h.find("treatment", "treatments")
	cPrev := h.find("prevention", "preventive_measures")
	if cKey == -1 {
		return nil, fmt.Errorf("pest table missing required columns, found %v; need key", rows[0])
	}

	out := []PestProfile{}
	for _, rec := range rows[1:] {
		if cell(rec, cKey) == "" {
			continue
		}
		p := PestProfile{
			Key:           cell(rec, cKey),
			Name:          cell(rec, cName),
			AffectedCrops: splitList(cell(rec, cCrops)),
			Symptoms:      cell(rec, cSym),
			Treatment:     parseTreatments(cell(rec, cTreat)),
			Prevention:    splitList(cell(rec, cPrev)),
		}
		if p.Name == "" {
			p.Name = p.Key
		}
		out = append(out, p)
	}
	return out, nil
}

func formatHistory(ps []PricePoint) string {
	items := make([]string, len(ps))
	for i, p := range ps {
		items[i] = p.Date + "=" + strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	return strings.Join(items, ";")
}

func parsePriceRows(source string, rows [][]string) ([]PriceQuote, error) {
	if len(rows) == 0 {
		return []PriceQuote{}, nil
	}
	h := newHeader(rows[0])
	cCrop := h.find("crop", "key")
	cVar := h.find("variety")
	cPrice := h.find("price", "modal_price")
	cUnit := h.find("unit")
	cMarket := h.find("market", "mandi")
	cDate := h.find("date")
	cChange := h.find("change")
	cPct := h.find("change_pct", "changepercent", "pct")
	cTrend := h.find("trend")
	cHist := h.find("history", "series")
	if cCrop == -1 || cPrice == -1 {
		return nil, fmt.Errorf("price table missing required columns, found %v; need crop, price", rows[0])
	}

	out := []PriceQuote{}
	for i, rec := range rows[1:] {
		if cell(rec, cCrop) == "" {
			continue
		}
		r := rowReader{source: source, row: i + 2, header: rows[0], rec: rec}
		q := PriceQuote{
			Crop:      cell(rec, cCrop),
			Variety:   cell(rec, cVar),
			Price:     r.floatAt(cPrice),
			Unit:      cell(rec, cUnit),
			Market:    cell(rec, cMarket),
			Date:      cell(rec, cDate),
			Change:    r.floatAt(cChange),
			ChangePct: r.floatAt(cPct),
			Trend:     Trend(cell(rec, cTrend)),
			History:   r.historyAt(cHist),
		}
		if r.err != nil {
			return nil, r.err
		}
		if q.Trend == "" {
			q.Trend = TrendStable
		}
		out = append(out, q)
	}
	return out, nil
}

// WriteYAML encodes the tables in the format LoadTables reads back.
func WriteYAML(w io.Writer, t *Tables) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tableSet{Crops: t.Crops(), Pests: t.Pests(), Prices: t.Prices()}); err != nil {
		return err
	}
	return enc.Close()
}

// WriteXLSX saves the tables as a workbook with one sheet per table.
func WriteXLSX(path string, t *Tables) error {
	x := excelize.NewFile()
	defer x.Close()

	write := func(sheet string, rows [][]any) error {
		if _, err := x.NewSheet(sheet); err != nil {
			return err
		}
		for i, r := range rows {
			addr, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := x.SetSheetRow(sheet, addr, &r); err != nil {
				return err
			}
		}
		return nil
	}

	crops := [][]any{{"Key", "Name", "Category", "Season", "Water", "Maturity Min Days", "Maturity Max Days"}}
	for _, c := range t.Crops() {
		crops = append(crops, []any{c.Key, c.Name, c.Category, string(c.Season), string(c.Water), c.MaturityMinDays, c.MaturityMaxDays})
	}
	pests := [][]any{{"Key", "Name", "Affected Crops", "Symptoms", "Treatment", "Prevention"}}
	for _, p := range t.Pests() {
		pests = append(pests, []any{p.Key, p.Name, strings.Join(p.AffectedCrops, ";"), p.Symptoms, formatTreatments(p.Treatment), strings.Join(p.Prevention, ";")})
	}
	prices := [][]any{{"Crop", "Variety", "Price", "Unit", "Market", "Date", "Change", "Change Pct", "Trend", "History"}}
	for _, q := range t.Prices() {
		prices = append(prices, []any{q.Crop, q.Variety, q.Price, q.Unit, q.Market, q.Date, q.Change, q.ChangePct, string(q.Trend), formatHistory(q.History)})
	}

	if err := write(sheetCrops, crops); err != nil {
		return err
	}
	if err := write(sheetPests, pests); err != nil {
		return err
	}
	if err := write(sheetPrices, prices); err != nil {
		return err
	}
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return x.SaveAs(path)
}
