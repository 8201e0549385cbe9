package crypto

import "testing"

var fastSeedParams = SeedParams{Memory: 64, Iterations: 1, Parallelism: 1}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeededRandomWithParams("correct horse", fastSeedParams)
	b := NewSeededRandomWithParams("correct horse", fastSeedParams)

	for i := 0; i < 100; i++ {
		x, y := a.IntN(1000), b.IntN(1000)
		if x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestSeededRandomSeedsDiffer(t *testing.T) {
	a := Generate(NewSeededRandomWithParams("seed-a", fastSeedParams), DefaultQuota())
	b := Generate(NewSeededRandomWithParams("seed-b", fastSeedParams), DefaultQuota())

	if a == b {
		t.Errorf("different seeds produced the same password %q", a)
	}
}

func TestSecureRandomRange(t *testing.T) {
	rnd := NewSecureRandom()
	for i := 0; i < 1000; i++ {
		if n := rnd.IntN(7); n < 0 || n >= 7 {
			t.Fatalf("IntN(7) = %d, out of range", n)
		}
	}
}

func TestClassCharsets(t *testing.T) {
	for _, c := range Classes {
		if c.Charset() == "" {
			t.Errorf("%s charset is empty", c)
		}
	}
	if Class(99).Charset() != "" {
		t.Error("unknown class should have an empty charset")
	}
	if Class(99).String() != "unknown" {
		t.Errorf("Class(99).String() = %q, want %q", Class(99).String(), "unknown")
	}
}
