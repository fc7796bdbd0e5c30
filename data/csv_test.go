package data

import (
	"reflect"
	"testing"

	"github.com/dhamidi/chomp/parse"
)

func TestParseCSV(t *testing.T) {
	input := "name,count,ok\nwidget,42,true\ngadget,7,false\n"
	doc, err := ParseCSV(input)
	if err != nil {
		t.Fatalf("ParseCSV() = %v", err)
	}

	want := [][]string{
		{"name", "count", "ok"},
		{"widget", "42", "true"},
		{"gadget", "7", "false"},
	}
	if !reflect.DeepEqual(doc.Records(), want) {
		t.Errorf("Records() = %v, want %v", doc.Records(), want)
	}
}

func TestParseCSVNoTrailingNewline(t *testing.T) {
	doc, err := ParseCSV("a,1\nb,2")
	if err != nil {
		t.Fatalf("ParseCSV() = %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(doc.Rows))
	}
}

func TestParseCSVCRLF(t *testing.T) {
	doc, err := ParseCSV("a,1\r\nb,2\r\n")
	if err != nil {
		t.Fatalf("ParseCSV() = %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(doc.Rows))
	}
}

func TestParseCSVQuotedCells(t *testing.T) {
	doc, err := ParseCSV("\"hello, world\",2\n")
	if err != nil {
		t.Fatalf("ParseCSV() = %v", err)
	}
	want := [][]string{{"hello, world", "2"}}
	if !reflect.DeepEqual(doc.Records(), want) {
		t.Errorf("Records() = %v, want %v", doc.Records(), want)
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	doc, err := ParseCSV("")
	if err != nil {
		t.Fatalf("ParseCSV() = %v", err)
	}
	if len(doc.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(doc.Rows))
	}
}

func TestParseCSVUnterminatedQuoteIsFatal(t *testing.T) {
	_, err := ParseCSV("\"oops,1\n")
	if !parse.IsFatal(err) {
		t.Errorf("ParseCSV() = %v, want fatal", err)
	}
}

func TestParseCSVRejectsPadding(t *testing.T) {
	// Whitespace is significant: a padded cell is not a bare word.
	_, err := ParseCSV("a, b\n")
	if err == nil {
		t.Error("ParseCSV() accepted padded cell")
	}
}
