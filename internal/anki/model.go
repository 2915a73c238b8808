package anki

const (
	// DefaultDeckID is the fixed id of generated decks, so that repeated
	// imports land in the same Anki deck
	DefaultDeckID int64 = 1234567890

	// WordCardModelID is the fixed id of the word card note type
	WordCardModelID int64 = 1212121212

	wordCardModelName = "Word card"
)

// wordCardFields are the note type fields in order
var wordCardFields = []string{"Word", "Transcription", "Answer", "Examples"}

// wordCardModel returns the note type definition stored in the
// collection. now is the modification time in seconds.
func wordCardModel(deckID, now int64) map[string]interface{} {
	flds := make([]map[string]interface{}, 0, len(wordCardFields))
	for i, name := range wordCardFields {
		flds = append(flds, map[string]interface{}{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		})
	}

	return map[string]interface{}{
		"id":    WordCardModelID,
		"name":  wordCardModelName,
		"type":  0,
		"mod":   now,
		"usn":   -1,
		"sortf": 0,
		"did":   deckID,
		"req":   [][]interface{}{{0, "all", []int{0}}},
		"vers":  []int{},
		"tags":  []string{},
		"latexPre": `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		"latexPost": `\end{document}`,
		"flds":      flds,
		"tmpls": []map[string]interface{}{
			{
				"name":  wordCardModelName,
				"ord":   0,
				"qfmt":  frontTemplate,
				"afmt":  backTemplate,
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
		},
		"css": cardCSS,
	}
}

const frontTemplate = `<div class="word">{{Word}}</div>
<div class="transcription">{{Transcription}}</div>`

const backTemplate = `<div class="word">{{Word}}</div>
<div class="transcription">{{Transcription}}</div>

<hr id="answer">

<div class="answer">{{Answer}}</div>
{{#Examples}}
<hr>
<div class="examples">{{Examples}}</div>
{{/Examples}}`

const cardCSS = `.card {
  font-family: Arial, sans-serif;
  text-align: center;
  color: #333;
  background-color: white;
}

.word {
  font-size: 28px;
  font-weight: bold;
  margin-bottom: 10px;
}

.transcription {
  font-size: 20px;
  font-style: italic;
  color: #555;
  margin-bottom: 15px;
}

.answer {
  font-size: 22px;
  margin-bottom: 15px;
}

.examples {
  font-size: 20px;
}

hr {
  border: 1px solid #ccc;
  margin: 10px 0;
}`
