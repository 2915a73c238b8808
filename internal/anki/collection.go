package anki

import (
	"encoding/json"
	"strconv"
)

// collectionSchema creates the tables of an Anki 2.1 collection (schema 11)
const collectionSchema = `
CREATE TABLE col (
	id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
	scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL,
	usn integer NOT NULL, ls integer NOT NULL, conf text NOT NULL,
	models text NOT NULL, decks text NOT NULL, dconf text NOT NULL,
	tags text NOT NULL
);
CREATE TABLE notes (
	id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
	mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL,
	flds text NOT NULL, sfld text NOT NULL, csum integer NOT NULL,
	flags integer NOT NULL, data text NOT NULL
);
CREATE TABLE cards (
	id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
	ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL,
	type integer NOT NULL, queue integer NOT NULL, due integer NOT NULL,
	ivl integer NOT NULL, factor integer NOT NULL, reps integer NOT NULL,
	lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
	odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL
);
CREATE TABLE revlog (
	id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
	ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
	factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL
);
CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_revlog_cid ON revlog (cid);
`

// idKey formats an id the way the collection JSON keys its maps
func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// deck is one entry of the col.decks JSON. The *Today pairs are
// [day, count] statistics and start empty.
type deck struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Desc             string `json:"desc"`
	Mod              int64  `json:"mod"`
	Usn              int    `json:"usn"`
	Conf             int    `json:"conf"`
	Dyn              int    `json:"dyn"`
	Collapsed        bool   `json:"collapsed"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	NewToday         [2]int `json:"newToday"`
	RevToday         [2]int `json:"revToday"`
	LrnToday         [2]int `json:"lrnToday"`
	TimeToday        [2]int `json:"timeToday"`
	ExtendNew        int    `json:"extendNew"`
	ExtendRev        int    `json:"extendRev"`
}

func newDeck(id int64, name, desc string, now int64) deck {
	return deck{
		ID:        id,
		Name:      name,
		Desc:      desc,
		Mod:       now,
		Conf:      1,
		ExtendNew: 10,
		ExtendRev: 50,
	}
}

type newCardOptions struct {
	Delays        []int `json:"delays"`
	Ints          []int `json:"ints"`
	InitialFactor int   `json:"initialFactor"`
	PerDay        int   `json:"perDay"`
	Order         int   `json:"order"`
	Bury          bool  `json:"bury"`
	Separate      bool  `json:"separate"`
}

type lapseOptions struct {
	Delays      []int   `json:"delays"`
	Mult        float64 `json:"mult"`
	MinInt      int     `json:"minInt"`
	LeechFails  int     `json:"leechFails"`
	LeechAction int     `json:"leechAction"`
}

type reviewOptions struct {
	PerDay   int     `json:"perDay"`
	Ease4    float64 `json:"ease4"`
	Fuzz     float64 `json:"fuzz"`
	MaxIvl   int     `json:"maxIvl"`
	IvlFct   float64 `json:"ivlFct"`
	Bury     bool    `json:"bury"`
	MinSpace int     `json:"minSpace"`
}

// deckOptions is one entry of the col.dconf JSON
type deckOptions struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Dyn      int            `json:"dyn"`
	New      newCardOptions `json:"new"`
	Lapse    lapseOptions   `json:"lapse"`
	Rev      reviewOptions  `json:"rev"`
	Timer    int            `json:"timer"`
	MaxTaken int            `json:"maxTaken"`
	Usn      int            `json:"usn"`
	Mod      int64          `json:"mod"`
	Autoplay bool           `json:"autoplay"`
	Replayq  bool           `json:"replayq"`
}

// defaultDeckOptions mirrors the options of a new Anki profile
func defaultDeckOptions(now int64) deckOptions {
	return deckOptions{
		ID:   1,
		Name: "Default",
		New: newCardOptions{
			Delays:        []int{1, 10},
			Ints:          []int{1, 4, 7},
			InitialFactor: 2500,
			PerDay:        20,
			Order:         1,
			Bury:          true,
			Separate:      true,
		},
		Lapse: lapseOptions{Delays: []int{10}, MinInt: 1, LeechFails: 8},
		Rev: reviewOptions{
			PerDay:   100,
			Ease4:    1.3,
			Fuzz:     0.05,
			MaxIvl:   36500,
			IvlFct:   1,
			Bury:     true,
			MinSpace: 1,
		},
		MaxTaken: 60,
		Mod:      now,
		Autoplay: true,
		Replayq:  true,
	}
}

// collectionConf is the col.conf JSON selecting the word card note type
func collectionConf() map[string]interface{} {
	return map[string]interface{}{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      idKey(WordCardModelID),
		"dayLearnFirst": false,
	}
}

// marshalColumns encodes each value as a JSON text column
func marshalColumns(values ...interface{}) ([]string, error) {
	columns := make([]string, 0, len(values))
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		columns = append(columns, string(data))
	}
	return columns, nil
}
