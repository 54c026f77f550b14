package spinservice

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// drawRange is the resolution of one wheel draw. A draw is a uniform
// integer in [0, drawRange); dividing by drawRange yields the normalized
// position walked against the cumulative probability table.
const drawRange = 1_000_000

type drawFunc func() (int64, error)

func cryptoDraw() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(drawRange))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

func newServerNonce() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}

const (
	prizePreset   = "preset"
	prizeWeighted = "weighted"
)

// determinePrize resolves the prize for the user's seq-th spin (1-based).
// Early spins follow the preset ladder; once the ladder is exhausted the
// weighted wheel takes over. The draw is recorded either way so every
// spin row carries verifiable randomness.
func (s *Service) determinePrize(seq int) (amount float64, policy string, draw int64, err error) {
	draw, err = s.draw()
	if err != nil {
		return 0, "", 0, err
	}

	if seq >= 1 && seq <= len(s.cfg.PresetPrizes) {
		return s.cfg.PresetPrizes[seq-1], prizePreset, draw, nil
	}

	normalized := float64(draw) / float64(drawRange)
	var cumulative float64
	for _, sector := range s.cfg.Probabilities {
		cumulative += sector.Probability
		if normalized < cumulative {
			return sector.Value, prizeWeighted, draw, nil
		}
	}
	// Rounding in the probability table can leave a sliver uncovered.
	return s.cfg.FallbackPrize, prizeWeighted, draw, nil
}
