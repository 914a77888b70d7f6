package render

// Notes:
// - XML: tests the element structure for common nodes, attribute escaping,
//   source positions, and that the break options do not change the tree.
// - Every output is decoded with encoding/xml to check well-formedness.

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestXML - Structure
// ---------------------------------------------------------------------------

func TestXML(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		doc, src := parse(t, "", false)
		got := string(XML(doc, src, Options{}))
		want := xmlHeader + `<document xmlns="http://commonmark.org/xml/1.0" />` + "\n"
		if got != want {
			t.Errorf("XML() = %q, want %q", got, want)
		}
	})

	t.Run("tight list", func(t *testing.T) {
		t.Parallel()

		doc, src := parse(t, "- a\n- b\n", false)
		got := string(XML(doc, src, Options{}))
		want := xmlHeader +
			`<document xmlns="http://commonmark.org/xml/1.0">` + "\n" +
			`  <list type="bullet" tight="true">` + "\n" +
			`    <item>` + "\n" +
			`      <paragraph>` + "\n" +
			`        <text xml:space="preserve">a</text>` + "\n" +
			`      </paragraph>` + "\n" +
			`    </item>` + "\n" +
			`    <item>` + "\n" +
			`      <paragraph>` + "\n" +
			`        <text xml:space="preserve">b</text>` + "\n" +
			`      </paragraph>` + "\n" +
			`    </item>` + "\n" +
			`  </list>` + "\n" +
			`</document>` + "\n"
		if got != want {
			t.Errorf("XML() =\n%s\nwant\n%s", got, want)
		}
	})

	tests := []struct {
		name   string
		source string
		wantIn []string
	}{
		{"ordered list", "3) x\n", []string{`<list type="ordered" start="3" delim="paren" tight="true">`}},
		{"code block info", "```go\na < b\n```\n", []string{`<code_block info="go" xml:space="preserve">a &lt; b` + "\n</code_block>"}},
		{"link attrs", `[t](/u "a & b")` + "\n", []string{`<link destination="/u" title="a &amp; b">`}},
		{"autolink", "<http://x.y>\n", []string{`<link destination="http://x.y" title="">`, `<text xml:space="preserve">http://x.y</text>`}},
		{"emphasis", "*a* **b**\n", []string{"<emph>", "<strong>"}},
		{"inline code", "`a&b`\n", []string{`<code xml:space="preserve">a&amp;b</code>`}},
		{"inline html", "a <b>x</b>\n", []string{`<html_inline xml:space="preserve">&lt;b&gt;</html_inline>`}},
		{"html block", "<div>\nx\n</div>\n", []string{`<html_block xml:space="preserve">&lt;div&gt;`}},
		{"soft break", "a\nb\n", []string{"<softbreak />"}},
		{"hard break", "a  \nb\n", []string{"<linebreak />"}},
		{"thematic break", "---\n", []string{"<thematic_break />"}},
		{"block quote", "> q\n", []string{"<block_quote>"}},
		{"heading level", "### h\n", []string{`<heading level="3">`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, src := parse(t, tt.source, false)
			got := string(XML(doc, src, Options{}))
			for _, want := range tt.wantIn {
				if !strings.Contains(got, want) {
					t.Errorf("XML() should contain %q, got:\n%s", want, got)
				}
			}
			if err := decodeAll(got); err != nil {
				t.Errorf("XML() is not well-formed: %v\n%s", err, got)
			}
		})
	}
}

func TestXML_SourcePos(t *testing.T) {
	t.Parallel()

	doc, src := parse(t, "# Hi\n\ntext\n", false)
	got := string(XML(doc, src, Options{SourcePos: true}))

	for _, want := range []string{
		`<heading sourcepos="1:1-1:4" level="1">`,
		`<paragraph sourcepos="3:1-3:4">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("XML() should contain %q, got:\n%s", want, got)
		}
	}
}

func TestXML_IgnoresBreakOptions(t *testing.T) {
	t.Parallel()

	doc, src := parse(t, "a\nb\n", false)
	plain := string(XML(doc, src, Options{}))
	for _, opts := range []Options{{HardBreaks: true}, {NoBreaks: true}} {
		if got := string(XML(doc, src, opts)); got != plain {
			t.Errorf("options %+v changed the tree:\n%s", opts, got)
		}
	}
}

func TestXML_WellFormed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"mixed document", mixedDocument},
		{"control character", "a\x01b\n"},
		{"vertical tab", "a\vb\n"},
		{"form feed in code", "```\nx\fy\n```\n"},
		{"invalid UTF-8", "a\xffb\n"},
		{"control in link", "[a\x02](/u\x03 \"t\x04\")\n"},
		{"control in info string", "``` go\x05\nx\n```\n"},
		{"noncharacter", "a\uFFFEb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, src := parse(t, tt.source, true)
			out := string(XML(doc, src, Options{SourcePos: true}))
			if err := decodeAll(out); err != nil {
				t.Fatalf("XML() is not well-formed: %v\n%q", err, out)
			}
		})
	}
}

func TestXMLEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{`a<b>&"c"`, "a&lt;b&gt;&amp;&quot;c&quot;"},
		{"tab\tnl\ncr\r", "tab\tnl\ncr\r"},
		{"a\x01\x0b\x0c\x1fb", "a\uFFFD\uFFFD\uFFFD\uFFFDb"},
		{"a\xffb", "a\uFFFDb"},
		{"\uFFFD kept", "\uFFFD kept"},
		{"caf\u00e9 \U0001F600", "caf\u00e9 \U0001F600"},
		{"\uFFFE\uFFFF", "\uFFFD\uFFFD"},
	}

	for _, tt := range tests {
		if got := xmlEscape(tt.in); got != tt.want {
			t.Errorf("xmlEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// decodeAll reads every token of s.
func decodeAll(s string) error {
	d := xml.NewDecoder(strings.NewReader(s))
	for {
		if _, err := d.Token(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
