package srm

import (
	"bufio"
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepx-core/deepx-go/pod"
	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/tensor"
)

func TestAssignAndPeek(t *testing.T) {
	m := New[float64, int64](3)
	m.Assign(7, []float64{1, 2, 3})

	row, ok := m.PeekRow(7)
	if !ok || row[0] != 1 || row[1] != 2 || row[2] != 3 {
		t.Fatalf("PeekRow(7) = (%v, %v), want ([1 2 3], true)", row, ok)
	}
	if _, ok := m.PeekRow(8); ok {
		t.Error("PeekRow(8) should report absent")
	}
}

func TestAssignViewAliasesCaller(t *testing.T) {
	m := New[float64, int64](2)
	buf := []float64{5, 6}
	m.AssignView(1, buf)
	buf[0] = 99
	row, _ := m.PeekRow(1)
	if row[0] != 99 {
		t.Error("AssignView should alias the caller's slice")
	}
}

func TestAssignCopies(t *testing.T) {
	m := New[float64, int64](2)
	buf := []float64{5, 6}
	m.Assign(1, buf)
	buf[0] = 99
	row, _ := m.PeekRow(1)
	if row[0] != 5 {
		t.Error("Assign should copy, not alias, the caller's slice")
	}
}

func TestGetRowLazyInit(t *testing.T) {
	m := New[float64, int64](3)
	m.SetInitializer(tensor.InitConstant, 4, 0)
	engine := rand.New(rand.NewSource(1))

	row := m.GetRow(engine, 10)
	for _, v := range row {
		if v != 4 {
			t.Errorf("lazily-initialized row = %v, want all 4", row)
		}
	}

	row[0] = 1
	again := m.GetRow(engine, 10)
	if again[0] != 1 {
		t.Error("GetRow should not reinitialize an existing row")
	}
}

func TestGetRowNoInitZeroFills(t *testing.T) {
	m := New[float64, int64](2)
	m.SetInitializer(tensor.InitOnes, 0, 0)
	row := m.GetRowNoInit(5)
	for _, v := range row {
		if v != 0 {
			t.Errorf("GetRowNoInit should zero-fill ignoring the initializer, got %v", row)
		}
	}
}

func TestSetInitializerRejectsInvalid(t *testing.T) {
	m := New[float64, int64](2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid initializer type")
		}
	}()
	m.SetInitializer(tensor.InitArange, 0, 0)
}

func TestSetInitializerRejectsInvertedRandBounds(t *testing.T) {
	m := New[float64, int64](2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for min > max")
		}
	}()
	m.SetInitializer(tensor.InitRand, 5, 1)
}

func TestUpsertOverwritesMergeKeeps(t *testing.T) {
	a := New[float64, int64](1)
	a.Assign(1, []float64{10})
	b := New[float64, int64](1)
	b.Assign(1, []float64{20})
	b.Assign(2, []float64{30})

	merged := New[float64, int64](1)
	merged.Assign(1, []float64{10})
	merged.Merge(b)
	if v, _ := merged.PeekRow(1); v[0] != 10 {
		t.Errorf("Merge should keep existing row 1, got %v", v)
	}
	if v, _ := merged.PeekRow(2); v[0] != 30 {
		t.Errorf("Merge should insert absent row 2, got %v", v)
	}

	upserted := New[float64, int64](1)
	upserted.Assign(1, []float64{10})
	upserted.Upsert(b)
	if v, _ := upserted.PeekRow(1); v[0] != 20 {
		t.Errorf("Upsert should overwrite row 1, got %v", v)
	}
}

func TestRemoveZeros(t *testing.T) {
	m := New[float64, int64](2)
	m.Assign(1, []float64{0, 0})
	m.Assign(2, []float64{1, 0})
	m.RemoveZeros()
	if _, ok := m.PeekRow(1); ok {
		t.Error("all-zero row should have been removed")
	}
	if _, ok := m.PeekRow(2); !ok {
		t.Error("non-zero row should survive RemoveZeros")
	}
}

func TestGetScalarRequiresColOne(t *testing.T) {
	m := New[float64, int64](2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for col() != 1")
		}
	}()
	engine := rand.New(rand.NewSource(1))
	m.GetScalar(engine, 1)
}

func TestGetRowLocked(t *testing.T) {
	m := New[float64, int64](2)
	lock := rwlock.New()
	engine := rand.New(rand.NewSource(1))

	row := m.GetRowLocked(engine, 3, lock)
	row[0] = 42
	again := m.GetRowLocked(engine, 3, lock)
	if again[0] != 42 {
		t.Error("GetRowLocked should not reinitialize an existing row")
	}
}

func TestEqual(t *testing.T) {
	a := New[float64, int64](2)
	a.Assign(1, []float64{1, 2})
	b := New[float64, int64](2)
	b.Assign(1, []float64{1, 2})
	if !a.Equal(b) {
		t.Error("matrices with identical rows should be Equal")
	}
	b.Assign(1, []float64{9, 9})
	if a.Equal(b) {
		t.Error("matrices with differing rows should not be Equal")
	}
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	m := New[float64, int64](3)
	m.SetInitializer(tensor.InitConstant, 7, 0)
	m.Assign(1, []float64{1, 2, 3})
	m.Assign(2, []float64{4, 5, 6})

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	out := New[float64, int64](0)
	if _, err := out.ReadFrom(bufio.NewReader(&buf)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if !out.Equal(m) {
		t.Errorf("round-tripped matrix not equal to original")
	}
}

func TestWriteToRowMapHeaderIsMagicAndUint64Size(t *testing.T) {
	m := New[float64, int64](2)
	m.SetInitializer(tensor.InitConstant, 0, 0)
	m.Assign(1, []float64{1, 2})
	m.Assign(2, []float64{3, 4})
	m.Assign(3, []float64{5, 6})

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	// Layout: magic(int32) col(int32) [row map header: magic(int32) size(uint64)] ...
	raw := buf.Bytes()
	const headerOffset = 4 + 4
	if len(raw) < headerOffset+12 {
		t.Fatalf("encoded matrix too short: %d bytes", len(raw))
	}

	r := bufio.NewReader(bytes.NewReader(raw[headerOffset:]))
	size, current, _, err := pod.ReadMapHeader(r)
	if err != nil {
		t.Fatalf("ReadMapHeader: %v", err)
	}
	if !current {
		t.Fatalf("row map header not recognized as magic-tagged current format")
	}
	if size != 3 {
		t.Fatalf("row map size = %d, want 3 (encoded as uint64 per sparse_row_matrix.h's row_map_ encoding)", size)
	}
}
