// Package render turns decoded API values into view models for the console's result regions.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
)

// Style selects the panel colouring of a view.
type Style string

const (
	StyleSuccess Style = "success"
	StyleError   Style = "error"
)

const (
	emptyCell   = "-"
	noData      = "No data found"
	notFound    = "Item not found"
	successText = "Success"
)

// View is a render model. Template names the html template that draws it.
type View interface {
	Template() string
}

// Column maps a record key to a table header.
type Column struct {
	Key   string
	Label string
}

// Field is one labelled value on a card.
type Field struct {
	Label string
	Value string
}

// Table lists records as rows.
type Table struct {
	Columns []Column
	Rows    [][]string
}

func (Table) Template() string { return "table" }

// Card shows the fields of a single record.
type Card struct {
	Title  string
	Fields []Field
}

func (Card) Template() string { return "card" }

// Result confirms a mutating call. Either Fields or Text is set.
type Result struct {
	Title  string
	Fields []Field
	Text   string
}

func (Result) Template() string { return "result" }

// Status is a headline panel such as a stock check or an order count.
type Status struct {
	Title    string
	Headline string
	Suffix   string
	Style    Style
}

func (Status) Template() string { return "status" }

// Notice is a single line message.
type Notice struct {
	Text  string
	Style Style
}

func (Notice) Template() string { return "notice" }

// Failure is the error panel.
type Failure struct {
	Message string
	Hint    string
}

func (Failure) Template() string { return "failure" }

// NewTable renders an array of records. Anything else, or an empty array, renders "No data found".
func NewTable(value any, columns []Column) View {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return Notice{Text: noData, Style: StyleError}
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rec, _ := item.(*apiclient.Record)
		row := make([]string, len(columns))
		for i, col := range columns {
			v, _ := rec.Get(col.Key)
			row[i] = FormatValue(v)
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Rows: rows}
}

// NewCard renders every field of a record in response order.
func NewCard(value any, title string) View {
	rec, ok := value.(*apiclient.Record)
	if !ok || rec == nil {
		if value == nil {
			return Notice{Text: notFound, Style: StyleError}
		}
		return Card{Title: title, Fields: []Field{{Label: "Value", Value: FormatValue(value)}}}
	}
	fields := make([]Field, 0, rec.Len())
	for _, f := range rec.Fields() {
		fields = append(fields, Field{Label: FormatKey(f.Key), Value: FormatValue(f.Value)})
	}
	return Card{Title: title, Fields: fields}
}

// NewResult renders the outcome of a create, update or delete call.
// Records keep their raw keys, nil becomes "Success", anything else is pretty JSON.
func NewResult(title string, value any) View {
	if value == nil {
		return Result{Title: title, Text: successText}
	}
	if rec, ok := value.(*apiclient.Record); ok {
		fields := make([]Field, 0, rec.Len())
		for _, f := range rec.Fields() {
			fields = append(fields, Field{Label: f.Key, Value: FormatValue(f.Value)})
		}
		if len(fields) > 0 {
			return Result{Title: title, Fields: fields}
		}
	}
	return Result{Title: title, Text: prettyJSON(value)}
}

// NewStockStatus renders IN STOCK or OUT OF STOCK from the record's inStock field.
func NewStockStatus(title string, value any) View {
	if value == nil {
		return Notice{Text: noData, Style: StyleError}
	}
	rec, _ := value.(*apiclient.Record)
	inStock, _ := rec.Get("inStock")
	if truthy(inStock) {
		return Status{Title: title, Headline: "IN STOCK", Style: StyleSuccess}
	}
	return Status{Title: title, Headline: "OUT OF STOCK", Style: StyleError}
}

// NewCount renders "<count> orders" from the record's count field.
func NewCount(title string, value any) View {
	if value == nil {
		return Notice{Text: noData, Style: StyleError}
	}
	rec, _ := value.(*apiclient.Record)
	count, _ := rec.Get("count")
	return Status{Title: title, Headline: FormatValue(count), Suffix: "orders", Style: StyleSuccess}
}

// NewFailure builds the error panel.
func NewFailure(message, hint string) View {
	return Failure{Message: message, Hint: hint}
}

// FormatKey turns a camelCase key into a title, e.g. "productId" becomes "Product Id".
func FormatKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := []rune(b.String())
	if len(out) > 0 {
		out[0] = unicode.ToUpper(out[0])
	}
	return strings.TrimSpace(string(out))
}

// FormatValue renders a decoded value as cell text. Null becomes "-".
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return emptyCell
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case *apiclient.Record, []any:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	default:
		return fmt.Sprint(t)
	}
}

func prettyJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return FormatValue(v)
	}
	return string(raw)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}
