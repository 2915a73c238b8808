package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	collectionFile = "collection.anki2"
	mediaFile      = "media"

	// fieldSeparator joins note fields in the notes table
	fieldSeparator = "\x1f"
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	notes    []Note
	now      func() time.Time
}

// NewAPKGGenerator creates a new APKG generator for the named deck
func NewAPKGGenerator(deckName string) *APKGGenerator {
	return &APKGGenerator{
		deckName: deckName,
		deckID:   DefaultDeckID,
		notes:    make([]Note, 0),
		now:      time.Now,
	}
}

// AddNote adds a note to the package
func (g *APKGGenerator) AddNote(note Note) {
	g.notes = append(g.notes, note)
}

// GenerateAPKG writes the notes as an Anki package. The collection is
// built in a scratch directory and then zipped together with an empty
// media map. A failed write leaves no package behind.
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	scratch, err := os.MkdirTemp("", "wordcard_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	dbPath := filepath.Join(scratch, collectionFile)
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := writePackage(outputPath, dbPath); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

// createDatabase fills a fresh collection database at dbPath
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	if err := g.insertNotes(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}

	return nil
}

// insertCollection writes the single col row holding the JSON blobs for
// configuration, note types, decks and deck options
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := g.now().Unix()

	blobs, err := marshalColumns(
		collectionConf(),
		map[string]interface{}{idKey(WordCardModelID): wordCardModel(g.deckID, now)},
		map[string]deck{
			idKey(1):        newDeck(1, "Default", "", now),
			idKey(g.deckID): newDeck(g.deckID, g.deckName, "English vocabulary cards created by wordcard", now),
		},
		map[string]deckOptions{idKey(1): defaultDeckOptions(now)},
	)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO col
		(id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now, now*1000, now*1000, blobs[0], blobs[1], blobs[2], blobs[3])
	return err
}

// insertNotes stores every note with its single card in one transaction.
// New cards are due in the order the notes were added.
func (g *APKGGenerator) insertNotes(db *sql.DB) error {
	now := g.now()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	noteStmt, err := tx.Prepare(`INSERT INTO notes
		(id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
		VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')`)
	if err != nil {
		return err
	}
	defer noteStmt.Close()

	cardStmt, err := tx.Prepare(`INSERT INTO cards
		(id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
		VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`)
	if err != nil {
		return err
	}
	defer cardStmt.Close()

	for i, note := range g.notes {
		// Ids are millisecond stamps, every note reserves two
		noteID := now.UnixMilli() + int64(i*2)
		cardID := noteID + 1

		_, err := noteStmt.Exec(noteID, uuid.NewString(), WordCardModelID, now.Unix(),
			strings.Join(note.Fields(), fieldSeparator), note.Word, fieldChecksum(note.Word))
		if err != nil {
			return fmt.Errorf("failed to insert note %q: %w", note.Word, err)
		}

		if _, err := cardStmt.Exec(cardID, noteID, g.deckID, now.Unix(), i+1); err != nil {
			return fmt.Errorf("failed to insert card for %q: %w", note.Word, err)
		}
	}

	return tx.Commit()
}

// fieldChecksum is the duplicate check value Anki keeps per note: the
// first four bytes of the SHA1 of the sort field
func fieldChecksum(field string) int64 {
	sum := sha1.Sum([]byte(field))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

// writePackage zips the collection database and the media map into
// outputPath
func writePackage(outputPath, dbPath string) (err error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return writeArchive(out, dbPath)
}

// writeArchive writes the package entries to w. The error of the final
// Close is returned too, it reports a central directory that never made
// it to w.
func writeArchive(w io.Writer, dbPath string) error {
	archive := zip.NewWriter(w)

	if err := addFile(archive, collectionFile, dbPath); err != nil {
		archive.Close()
		return err
	}

	// No media is shipped, the map is still required
	media, err := archive.Create(mediaFile)
	if err != nil {
		archive.Close()
		return err
	}
	if _, err := io.WriteString(media, "{}"); err != nil {
		archive.Close()
		return err
	}

	return archive.Close()
}

// addFile copies the file at path into the archive under name
func addFile(archive *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := archive.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	return err
}
