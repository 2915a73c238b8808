package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
		wantErr     bool
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "one word per line",
			fileContent: `run
tool
give up`,
			want: []string{"run", "tool", "give up"},
		},
		{
			name: "empty lines and whitespace",
			fileContent: `
run

tool  

  give up  

`,
			want: []string{"run", "tool", "give up"},
		},
		{
			name:        "windows line endings",
			fileContent: "run\r\ntool\r\ngive up",
			want:        []string{"run", "tool", "give up"},
		},
		{
			name: "comments are skipped",
			fileContent: `# verbs
run
  # nouns
tool`,
			want: []string{"run", "tool"},
		},
		{
			name:        "duplicates are kept",
			fileContent: "run\nrun",
			want:        []string{"run", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "words.txt")
			err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644)
			if err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadBatchFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestReadWords(t *testing.T) {
	got, err := ReadWords(strings.NewReader("  run  \n#skip\nwalk"))
	if err != nil {
		t.Fatalf("ReadWords() error = %v", err)
	}

	want := []string{"run", "walk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadWords() = %q, want %q", got, want)
	}
}
