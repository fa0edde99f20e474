package optimizer

import (
	"math"
	"testing"

	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestClipScalarAndArray(t *testing.T) {
	g := 100.0
	ClipScalar(&g)
	if g != gradClipThreshold {
		t.Errorf("ClipScalar(100) = %v, want %v", g, float64(gradClipThreshold))
	}
	g = -100.0
	ClipScalar(&g)
	if g != -gradClipThreshold {
		t.Errorf("ClipScalar(-100) = %v, want %v", g, float64(-gradClipThreshold))
	}

	arr := []float64{100, -100, 5}
	ClipArray(3, arr)
	want := []float64{20, -20, 5}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("ClipArray[%d] = %v, want %v", i, arr[i], want[i])
		}
	}
}

func TestSGDUpdateScalarAndDecay(t *testing.T) {
	c := NewSGDConfig[float64, int32]()
	c.BatchDecay = 2
	c.BatchDecayRate = 0.5
	c.MinAlpha = 0

	w := 1.0
	c.UpdateScalar(2.0, &w)
	if !almostEqual(w, 1-0.01*2, 1e-12) {
		t.Errorf("SGD w = %v, want %v", w, 1-0.01*2)
	}

	c.PostBatch()
	if c.RealAlpha() != 0.01 {
		t.Errorf("after 1 batch, RealAlpha = %v, want unchanged 0.01", c.RealAlpha())
	}
	c.PostBatch()
	if !almostEqual(c.RealAlpha(), 0.005, 1e-12) {
		t.Errorf("after 2 batches, RealAlpha = %v, want 0.005", c.RealAlpha())
	}
}

func TestAdaGradUpdateScalar(t *testing.T) {
	c := NewAdaGradConfig[float64, int32]()
	w, n := 1.0, 0.0
	c.UpdateScalar(2.0, &w, &n)
	if n != 4 {
		t.Errorf("AdaGrad n = %v, want 4", n)
	}
	wantW := 1.0 - 2.0/math.Sqrt(4+c.Beta)*c.Alpha
	if !almostEqual(w, wantW, 1e-12) {
		t.Errorf("AdaGrad w = %v, want %v", w, wantW)
	}
}

func TestMomentumUpdateScalar(t *testing.T) {
	c := NewMomentumConfig[float64, int32]()
	w, v := 1.0, 0.0
	c.UpdateScalar(2.0, &w, &v)
	if v != 2 {
		t.Errorf("Momentum v = %v, want 2", v)
	}
	if !almostEqual(w, 1-c.Alpha*2, 1e-12) {
		t.Errorf("Momentum w = %v, want %v", w, 1-c.Alpha*2)
	}
}

func TestRMSPropUpdateScalar(t *testing.T) {
	c := NewRMSPropConfig[float64, int32]()
	w, v := 1.0, 0.0
	c.UpdateScalar(2.0, &w, &v)
	wantV := c.Rho*0 + c.oneSubRho*4
	if !almostEqual(v, wantV, 1e-12) {
		t.Errorf("RMSProp v = %v, want %v", v, wantV)
	}
}

func TestAdaDeltaUpdateScalar(t *testing.T) {
	c := NewAdaDeltaConfig[float64, int32]()
	w, n, deltaw := 1.0, 0.0, 0.0
	c.UpdateScalar(2.0, &w, &n, &deltaw)
	if n <= 0 {
		t.Errorf("AdaDelta n = %v, want > 0", n)
	}
	if w == 1.0 {
		t.Errorf("AdaDelta did not move w")
	}
}

func TestAdamUpdateScalar(t *testing.T) {
	c := NewAdamConfig[float64, int32]()
	c.PreBatch()
	w, m, v := 1.0, 0.0, 0.0
	c.UpdateScalar(2.0, &w, &m, &v)
	if m != c.oneSubRho1*2 {
		t.Errorf("Adam m = %v, want %v", m, c.oneSubRho1*2)
	}
	if v != c.oneSubRho2*4 {
		t.Errorf("Adam v = %v, want %v", v, c.oneSubRho2*4)
	}
	if w == 1.0 {
		t.Errorf("Adam did not move w")
	}
}

func TestFTRLUpdateScalarSparsifiesSmallZ(t *testing.T) {
	c := NewFTRLConfig[float64, int32]()
	c.L1 = 100 // force every update under threshold
	w, n, z := 1.0, 0.0, 0.0
	c.UpdateScalar(0.1, &w, &n, &z)
	if w != 0 {
		t.Errorf("FTRL w = %v, want 0 (below L1 threshold)", w)
	}
}

func TestFTRLUpdateScalarMovesWeightPastThreshold(t *testing.T) {
	c := NewFTRLConfig[float64, int32]()
	c.L1 = 0
	w, n, z := 1.0, 0.0, 0.0
	c.UpdateScalar(2.0, &w, &n, &z)
	if w == 1.0 {
		t.Errorf("FTRL did not move w")
	}
}

func TestGFTRLGroupZeroesWholeRow(t *testing.T) {
	c := NewGFTRLConfig[float64, int32]()
	c.Lambda = 100 // force the whole row under threshold
	w := []float64{1, 1}
	n := []float64{0, 0}
	z := []float64{0, 0}
	c.UpdateArray(2, []float64{0.1, 0.1}, w, n, z)
	if w[0] != 0 || w[1] != 0 {
		t.Errorf("GFTRL group update = %v, want [0 0]", w)
	}
}

func TestGFTRLGroupMovesRowPastThreshold(t *testing.T) {
	c := NewGFTRLConfig[float64, int32]()
	c.Lambda = 1e-9
	w := []float64{1, 1}
	n := []float64{0, 0}
	z := []float64{0, 0}
	c.UpdateArray(2, []float64{2, 2}, w, n, z)
	if w[0] == 1 || w[1] == 1 {
		t.Errorf("GFTRL group update did not move weights: %v", w)
	}
}

func TestSGDUpdateTSR2TSR(t *testing.T) {
	c := NewSGDConfig[float64, int32]()
	g := tensor.New[float64](3)
	g.SetData([]float64{1, 2, 3})
	w := tensor.New[float64](3)
	w.SetData([]float64{10, 10, 10})

	c.UpdateTSR2TSR(g, w)

	want := []float64{10 - 0.01, 10 - 0.02, 10 - 0.03}
	got := w.Data()
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Errorf("UpdateTSR2TSR[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSGDUpdateSRM2TSR(t *testing.T) {
	c := NewSGDConfig[float64, int32]()
	g := srm.New[float64, int32](2)
	g.Assign(1, []float64{1, 1})

	w := tensor.New[float64](3, 2)
	w.SetData([]float64{0, 0, 5, 5, 0, 0})

	c.UpdateSRM2TSR(g, w)

	got := w.Data()
	want := []float64{0, 0, 5 - 0.01, 5 - 0.01, 0, 0}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Errorf("UpdateSRM2TSR[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdaGradUpdateSRM2SRMCreatesAuxRows(t *testing.T) {
	c := NewAdaGradConfig[float64, int32]()
	g := srm.New[float64, int32](1)
	g.Assign(7, []float64{2})

	w := srm.New[float64, int32](1)
	n := srm.New[float64, int32](1)

	c.UpdateSRM2SRM(g, w, n)

	nRow, ok := n.PeekRow(7)
	if !ok || nRow[0] != 4 {
		t.Errorf("n row for id 7 = %v ok=%v, want [4] true", nRow, ok)
	}
	if _, ok := w.PeekRow(7); !ok {
		t.Errorf("expected w row for id 7 to be created")
	}
}
