package sample

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SnippetFileName is the display name of the sample instance document.
const SnippetFileName = "company-financials.xbrl"

// Snippet is a trimmed XBRL instance with a single revenue fact.
const Snippet = `<xbrl>
  <context id="2023">
    <entity>
      <identifier>123456789</identifier>
    </entity>
    <period>
      <startDate>2023-01-01</startDate>
      <endDate>2023-12-31</endDate>
    </period>
  </context>
  
  <us-gaap:Revenue contextRef="2023" 
    unitRef="USD" decimals="-3">
    1,250,000
  </us-gaap:Revenue>
</xbrl>`

// Fact is a tagged value from the sample snippet.
type Fact struct {
	Concept    string
	ContextRef string
	Entity     string
	StartDate  string
	EndDate    string
	Unit       string
	Decimals   int
	Value      int64
}

var snippetFact = Fact{
	Concept:    "us-gaap:Revenue",
	ContextRef: "2023",
	Entity:     "123456789",
	StartDate:  "2023-01-01",
	EndDate:    "2023-12-31",
	Unit:       "USD",
	Decimals:   -3,
	Value:      1250000,
}

// SnippetFact returns the fact encoded in Snippet.
func SnippetFact() Fact {
	return snippetFact
}

// ReportSample names the catalog filing the visual report is about.
const ReportSample = "apple-10k-2023"

// CodeView returns the raw snippet.
func CodeView() string {
	return Snippet
}

// VisualView renders the Apple 10-K sample report for the given locale, with
// the snippet's revenue fact as its single row.
func VisualView(tag language.Tag) string {
	p := message.NewPrinter(tag)
	f := snippetFact
	doc, _ := Builtin().Lookup(ReportSample)

	var b strings.Builder
	b.WriteString("Sample iXBRL Report - Apple Inc. 10-K\n")
	fmt.Fprintf(&b, "  Filing:    %s\n", doc.SourceURL)
	fmt.Fprintf(&b, "  Rendered:  run `xbrl-cli fetch %s`\n", ReportSample)
	fmt.Fprintf(&b, "  Source:    %s\n", SnippetFileName)
	fmt.Fprintf(&b, "  Entity:    %s\n", f.Entity)
	fmt.Fprintf(&b, "  Period:    %s to %s (context %q)\n", f.StartDate, f.EndDate, f.ContextRef)
	fmt.Fprintf(&b, "  Concept:   %s\n", f.Concept)
	b.WriteString(p.Sprintf("  Value:     %d %s\n", f.Value, f.Unit))
	fmt.Fprintf(&b, "  Precision: %s\n", precisionLabel(f.Decimals))
	return b.String()
}

func precisionLabel(decimals int) string {
	switch {
	case decimals == 0:
		return "exact to units"
	case decimals > 0:
		return fmt.Sprintf("%d decimal places", decimals)
	case decimals == -3:
		return "rounded to thousands"
	case decimals == -6:
		return "rounded to millions"
	default:
		return fmt.Sprintf("rounded to 10^%d", -decimals)
	}
}
