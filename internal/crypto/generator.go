package crypto

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Generate composes a password for q and shuffles it so the class-grouped
// composition order does not survive.
func Generate(rnd Random, q Quota) string {
	return Shuffle(rnd, Compose(rnd, q))
}

// Compose samples every class according to q and concatenates the results
// in class order: lowercase, uppercase, digits, specials.
func Compose(rnd Random, q Quota) string {
	var sb strings.Builder
	sb.Grow(q.Length())

	for _, c := range Classes {
		sb.WriteString(Sample(rnd, q.Count(c), c))
	}

	return sb.String()
}

// Sample draws count characters uniformly, with replacement, from the
// class charset.
func Sample(rnd Random, count int, c Class) string {
	if count <= 0 {
		return ""
	}

	charset := c.Charset()
	out := make([]byte, count)
	for i := range out {
		out[i] = charset[rnd.IntN(len(charset))]
	}
	return string(out)
}

// Shuffle returns a uniformly random permutation of the grapheme clusters
// in s. Clusters that span several code points move as one unit.
func Shuffle(rnd Random, s string) string {
	clusters := Graphemes(s)

	// Fisher-Yates.
	for i := len(clusters) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		clusters[i], clusters[j] = clusters[j], clusters[i]
	}

	return strings.Join(clusters, "")
}

// Graphemes splits s into its user-perceived characters.
func Graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
