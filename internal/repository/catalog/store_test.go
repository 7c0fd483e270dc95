package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/roomsearch/internal/domain"
)

func testRecords() []Record {
	return []Record{
		{Style: "Modern", FileName: "m1.jpg", Title: "Bright modern bath", Description: "glass shower, white tile"},
		{Style: "Boho", FileName: "b1.jpg", Title: "Warm boho bath", Description: "rattan, plants, warm light"},
		{Style: "Industrial", FileName: "i1.jpg", Title: "Concrete loft bath", Description: "concrete walls, black fixtures"},
	}
}

func testVectors() [][]float32 {
	return [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func writeFixture(t *testing.T, records []Record, vectors [][]float32) (string, string) {
	t.Helper()
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "catalog.json")
	embPath := filepath.Join(dir, "embeddings.parquet")
	if err := Write(itemsPath, embPath, records, vectors); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return itemsPath, embPath
}

func TestLoad_RoundTrip(t *testing.T) {
	itemsPath, embPath := writeFixture(t, testRecords(), testVectors())

	store, err := Load(Config{ItemsPath: itemsPath, EmbeddingsPath: embPath})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3", store.Len())
	}
	if store.Dim() != 3 {
		t.Errorf("Dim = %d, want 3", store.Dim())
	}

	it := store.At(1)
	if it.ID() != 1 {
		t.Errorf("At(1).ID = %d, want 1", it.ID())
	}
	if it.Style() != "Boho" {
		t.Errorf("At(1).Style = %q, want Boho", it.Style())
	}
	if it.AssetPath() != "/static/boho/b1.jpg" {
		t.Errorf("At(1).AssetPath = %q", it.AssetPath())
	}

	vecs := store.Vectors()
	if len(vecs) != 3 || vecs[2][2] != 1 {
		t.Errorf("Vectors mismatch: %v", vecs)
	}
}

func TestLoad_RecoversFromDescriptionlessRecords(t *testing.T) {
	// Two extra records that never received embeddings at index time, one
	// of them in the middle so the survivors after it must be renumbered.
	base := testRecords()
	records := []Record{
		base[0],
		{Style: "Modern", FileName: "noise1.jpg", Title: "no caption"},
		base[1],
		base[2],
		{Style: "Boho", FileName: "noise2.jpg", Title: "no caption", Description: "   "},
	}
	_, embPath := writeFixture(t, testRecords(), testVectors())

	itemsPath := filepath.Join(t.TempDir(), "catalog.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(itemsPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(Config{ItemsPath: itemsPath, EmbeddingsPath: embPath})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3 after recovery", store.Len())
	}
	// Survivors past the dropped record carry their new matrix positions.
	for i := 0; i < store.Len(); i++ {
		if got := store.At(i).ID(); got != i {
			t.Errorf("At(%d).ID = %d, want %d", i, got, i)
		}
	}
	if it := store.At(1); it.Style() != "Boho" {
		t.Errorf("At(1).Style = %q, want Boho", it.Style())
	}
	if it := store.At(2); it.Style() != "Industrial" {
		t.Errorf("At(2).Style = %q, want Industrial", it.Style())
	}
}

func TestLoad_UnrecoverableMismatch(t *testing.T) {
	// 3 records, all with descriptions, but only 2 embedding rows.
	itemsPath, _ := writeFixture(t, testRecords(), testVectors())
	_, embPath := writeFixture(t, testRecords()[:2], testVectors()[:2])

	_, err := Load(Config{ItemsPath: itemsPath, EmbeddingsPath: embPath})
	if !errors.Is(err, domain.ErrCatalogIntegrity) {
		t.Fatalf("err = %v, want ErrCatalogIntegrity", err)
	}
}

func TestLoad_FewerRecordsThanRows(t *testing.T) {
	itemsPath, _ := writeFixture(t, testRecords()[:2], testVectors()[:2])
	_, embPath := writeFixture(t, testRecords(), testVectors())

	_, err := Load(Config{ItemsPath: itemsPath, EmbeddingsPath: embPath})
	if !errors.Is(err, domain.ErrCatalogIntegrity) {
		t.Fatalf("err = %v, want ErrCatalogIntegrity", err)
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(Config{
		ItemsPath:      filepath.Join(dir, "absent.json"),
		EmbeddingsPath: filepath.Join(dir, "absent.parquet"),
	})
	if !errors.Is(err, domain.ErrCatalogIntegrity) {
		t.Fatalf("err = %v, want ErrCatalogIntegrity", err)
	}
}

func TestLoad_MalformedCatalog(t *testing.T) {
	_, embPath := writeFixture(t, testRecords(), testVectors())
	badPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Config{ItemsPath: badPath, EmbeddingsPath: embPath})
	if !errors.Is(err, domain.ErrCatalogIntegrity) {
		t.Fatalf("err = %v, want ErrCatalogIntegrity", err)
	}
}

func TestWrite_RejectsRaggedInput(t *testing.T) {
	dir := t.TempDir()
	err := Write(
		filepath.Join(dir, "c.json"), filepath.Join(dir, "e.parquet"),
		testRecords(), testVectors()[:2],
	)
	if err == nil {
		t.Fatal("expected error for record/vector count mismatch")
	}

	err = Write(
		filepath.Join(dir, "c.json"), filepath.Join(dir, "e.parquet"),
		testRecords(), [][]float32{{1, 0}, {0, 1}, {1}},
	)
	if err == nil {
		t.Fatal("expected error for ragged vectors")
	}
}
