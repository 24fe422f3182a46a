package ehh

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/carbocation/ehhscan/hapdata"
)

// ihsFixture: derived EHH decays within two loci on either side of the core
// (index 2); ancestral EHH decays after one locus on the left and three on
// the right. Genetic spacing widens between loci 3 and 4.
func ihsFixture(t *testing.T) (*hapdata.Haplotypes, *hapdata.Map) {
	h := mustHaplotypes(t, [][]int8{
		{0, 1, 1, 0, 1, 0},
		{1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 1, 0, 1, 1, 1},
	})
	m := evenMap(6, 1000, 0.01)
	m.Genetic = []float64{0, 0.01, 0.02, 0.03, 0.05, 0.06}
	return h, m
}

func TestIHS(t *testing.T) {
	h, m := ihsFixture(t)

	res, err := mustScanner(t, DefaultConfig()).IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}

	// Left: derived 0.01+0.005, ancestral 0.005.
	// Right: derived 0.01+0.01, ancestral 0.01+0.02+0.005.
	if math.Abs(res.IHHDerived[2]-0.035) > 1e-12 || math.Abs(res.IHHAncestral[2]-0.04) > 1e-12 {
		t.Fatalf("Got iHH derived %f, ancestral %f", res.IHHDerived[2], res.IHHAncestral[2])
	}
	if expected := math.Log(0.035 / 0.04); math.Abs(res.IHS[2]-expected) > 1e-9 {
		t.Fatalf("Got iHS %f, expected %f", res.IHS[2], expected)
	}
	if res.Freq[2] != 0.5 {
		t.Fatalf("Got frequency %f", res.Freq[2])
	}

	// The end loci run off the chromosome.
	for _, locus := range []int{0, 5} {
		if res.IHS[locus] != Missing || res.IHHDerived[locus] != Missing {
			t.Fatalf("Locus %d should be Missing, got %f", locus, res.IHS[locus])
		}
	}
}

func TestIHSMaxExtend(t *testing.T) {
	// EHH never decays, so only MaxExtend can end a walk.
	h := mustHaplotypes(t, [][]int8{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	m := evenMap(5, 1000, 0.01)

	res, err := mustScanner(t, DefaultConfig()).IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	for locus, v := range res.IHS {
		if v != Missing {
			t.Fatalf("Locus %d should hit the chromosome edge, got %f", locus, v)
		}
	}

	cfg := DefaultConfig()
	cfg.MaxExtend = 1500
	res, err = mustScanner(t, cfg).IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	for locus, v := range res.IHS {
		if locus == 2 {
			if v != 0 || math.Abs(res.IHHDerived[2]-0.04) > 1e-12 {
				t.Fatalf("Locus 2: got iHS %f, iHH %f", v, res.IHHDerived[2])
			}
		} else if v != Missing {
			t.Fatalf("Locus %d should be Missing, got %f", locus, v)
		}
	}
}

func TestIHSSkips(t *testing.T) {
	h := mustHaplotypes(t, [][]int8{
		{1, 0, 1},
		{1, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{1, 0, 0},
	})
	m := &hapdata.Map{
		Names:    []string{"mono", "rare", "gap"},
		Physical: []int{0, 1000, 500000},
		Genetic:  []float64{0, 0.01, 0.02},
	}

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.MAF = 0.25
	s, err := NewScanner(cfg, log.New(&buf, "", 0), nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	for locus, v := range res.IHS {
		if v != Missing {
			t.Fatalf("Locus %d should be Missing, got %f", locus, v)
		}
	}

	for _, expected := range []string{
		"WARNING: Locus mono has MAF < 0.25. Skipping calculation at mono",
		"WARNING: Locus rare has MAF < 0.25. Skipping calculation at rare",
		"WARNING: Locus gap has MAF < 0.25. Skipping calculation at gap",
	} {
		if !strings.Contains(buf.String(), expected) {
			t.Fatalf("Log is missing %q:\n%s", expected, buf.String())
		}
	}

	buf.Reset()
	cfg.MAF = 0
	s, err = NewScanner(cfg, log.New(&buf, "", 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.IHS(h, m); err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{
		"WARNING: locus mono (number 1) is monomorphic. Skipping calculation at this locus.",
		"WARNING: Reached chromosome edge before EHH decayed below 0.05. Skipping calculation at rare",
		"WARNING: Reached a gap of 499000bp > 200000bp. Skipping calculation at gap",
	} {
		if !strings.Contains(buf.String(), expected) {
			t.Fatalf("Log is missing %q:\n%s", expected, buf.String())
		}
	}
}

func TestIHSFlipNegates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := randomHaplotypes(t, rng, 40, 60)
	m := evenMap(60, 1000, 0.001)

	s := mustScanner(t, DefaultConfig())
	res, err := s.IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	flipped, err := s.IHS(h.Flip(), m)
	if err != nil {
		t.Fatal(err)
	}

	scored := 0
	for locus := range res.IHS {
		a, b := res.IHS[locus], flipped.IHS[locus]
		if (a == Missing) != (b == Missing) {
			t.Fatalf("Locus %d: %f vs %f", locus, a, b)
		}
		if a == Missing {
			continue
		}
		scored++
		if math.Abs(a+b) > 1e-9 {
			t.Fatalf("Locus %d: iHS %f did not negate (%f)", locus, a, b)
		}
		if math.Abs(res.Freq[locus]+flipped.Freq[locus]-1) > 1e-12 {
			t.Fatalf("Locus %d: frequencies %f and %f", locus, res.Freq[locus], flipped.Freq[locus])
		}
	}
	if scored == 0 {
		t.Fatalf("No loci were scored")
	}
}

func TestXPEHHSwapNegates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pop1 := randomHaplotypes(t, rng, 30, 50)
	pop2 := randomHaplotypes(t, rng, 24, 50)
	m := evenMap(50, 1000, 0.001)

	s := mustScanner(t, DefaultConfig())
	res, err := s.XPEHH(pop1, pop2, m)
	if err != nil {
		t.Fatal(err)
	}
	swapped, err := s.XPEHH(pop2, pop1, m)
	if err != nil {
		t.Fatal(err)
	}

	scored := 0
	for locus := range res.XPEHH {
		a, b := res.XPEHH[locus], swapped.XPEHH[locus]
		if (a == Missing) != (b == Missing) {
			t.Fatalf("Locus %d: %f vs %f", locus, a, b)
		}
		if a == Missing {
			continue
		}
		scored++
		if math.Abs(a+b) > 1e-9 || res.IHH1[locus] != swapped.IHH2[locus] {
			t.Fatalf("Locus %d: XP-EHH %f did not negate (%f)", locus, a, b)
		}
	}
	if scored == 0 {
		t.Fatalf("No loci were scored")
	}
}

func TestXPEHHLocusMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := mustScanner(t, DefaultConfig()).XPEHH(randomHaplotypes(t, rng, 4, 5), randomHaplotypes(t, rng, 4, 6), evenMap(5, 1000, 0.01))
	if err == nil {
		t.Fatalf("Expected an error for populations of different lengths")
	}
}

func TestThreadsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := randomHaplotypes(t, rng, 32, 80)
	m := evenMap(80, 1000, 0.001)

	single, err := mustScanner(t, DefaultConfig()).IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	singleSoft, err := mustScanner(t, DefaultConfig()).SoftIHS(h, m)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Threads = 5
	counter := &Counter{}
	s, err := NewScanner(cfg, nil, counter)
	if err != nil {
		t.Fatal(err)
	}

	multi, err := s.IHS(h, m)
	if err != nil {
		t.Fatal(err)
	}
	multiSoft, err := s.SoftIHS(h, m)
	if err != nil {
		t.Fatal(err)
	}

	for locus := range single.IHS {
		if single.IHS[locus] != multi.IHS[locus] || singleSoft.H12[locus] != multiSoft.H12[locus] {
			t.Fatalf("Locus %d differs between 1 and 5 threads", locus)
		}
	}
	if counter.Count() != 160 {
		t.Fatalf("Expected 160 loci of progress, got %d", counter.Count())
	}
}

func TestSoftIHS(t *testing.T) {
	h := mustHaplotypes(t, [][]int8{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	m := evenMap(5, 1000, 0.01)

	cfg := DefaultConfig()
	cfg.MaxExtend = 1500
	res, err := mustScanner(t, cfg).SoftIHS(h, m)
	if err != nil {
		t.Fatal(err)
	}

	// Two groups of two throughout: H1 = 1/3, H12 = 1, H2/H1 = 1/2, over
	// 0.04 genetic units.
	if math.Abs(res.H1[2]-0.04/3) > 1e-12 || math.Abs(res.H12[2]-0.04) > 1e-12 || math.Abs(res.H2H1[2]-0.02) > 1e-12 {
		t.Fatalf("Got H1 %f, H12 %f, H2H1 %f", res.H1[2], res.H12[2], res.H2H1[2])
	}
	if res.H1[0] != Missing || res.Freq[2] != 0.5 {
		t.Fatalf("Unexpected result %+v", res)
	}
}

func TestNewScannerRejectsBadConfig(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Threads = 0 },
		func(c *Config) { c.Cutoff = 1 },
		func(c *Config) { c.GapScale = 0 },
		func(c *Config) { c.MaxGap = 0 },
		func(c *Config) { c.SoftK = 0 },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		if _, err := NewScanner(cfg, nil, nil); err == nil {
			t.Fatalf("Expected %+v to be rejected", cfg)
		}
	}
}
