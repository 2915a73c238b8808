package testutil

import (
	"html"
	"strings"
)

// Sense describes one definition block of a generated dictionary page
type Sense struct {
	Definition string
	Examples   []string
	NoText     bool // Omit the definition text node
	NoBody     bool // Omit the example body that follows the heading
}

// CambridgePage renders a minimal word page in the Cambridge layout.
// A UK pronunciation is always placed before the US one.
func CambridgePage(transcription string, senses ...Sense) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html><head><title>test</title></head><body>\n")
	b.WriteString(`<div class="pos-header dpos-h">` + "\n")
	b.WriteString(`  <span class="uk dpron-i "><span class="pron dpron">/<span class="ipa dipa lpr-2 lpl-1">uk.ipa</span>/</span></span>` + "\n")
	if transcription != "" {
		b.WriteString(`  <span class="us dpron-i "><span class="pron dpron">/<span class="ipa dipa lpr-2 lpl-1">`)
		b.WriteString(html.EscapeString(transcription))
		b.WriteString("</span>/</span></span>\n")
	}
	b.WriteString("</div>\n")

	for _, s := range senses {
		b.WriteString(`<div class="def-block ddef_block " data-wl-senseid="ID">` + "\n")
		b.WriteString(`  <div class="ddef_h"><span class="def-info ddef-info"><span class="epp-xref dxref A1">A1</span></span>` + "\n")
		if !s.NoText {
			b.WriteString(`    <div class="def ddef_d db">`)
			b.WriteString(html.EscapeString(s.Definition))
			b.WriteString(":</div>\n")
		}
		b.WriteString("  </div>\n")
		if !s.NoBody {
			b.WriteString(`  <div class="def-body ddef_b">` + "\n")
			for _, ex := range s.Examples {
				b.WriteString(`    <div class="examp dexamp"> <span class="eg deg">`)
				b.WriteString(html.EscapeString(ex))
				b.WriteString("</span> </div>\n")
			}
			b.WriteString("  </div>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body></html>\n")
	return b.String()
}
