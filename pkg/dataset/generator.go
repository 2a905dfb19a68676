// Package dataset builds the random user lists fed to the sort engines.
package dataset

import (
	"math/rand/v2"
	"strconv"

	"sortbench/pkg/common"
)

const (
	MinRank = 1
	MaxRank = 1000
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type Generator struct {
	src Source
}

// NewGenerator uses src, or the process-wide math/rand/v2 source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeededGenerator returns a reproducible generator. Seed 0 means unseeded.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		return NewGenerator(nil)
	}
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)))
}

// Generate returns size users named "User 1".."User size" with ranks drawn
// independently from [MinRank, MaxRank]. size <= 0 yields an empty slice.
func (g *Generator) Generate(size int) []common.User {
	if size <= 0 {
		return []common.User{}
	}

	users := make([]common.User, 0, size)
	for i := 0; i < size; i++ {
		users = append(users, common.User{
			Name: "User " + strconv.Itoa(i+1),
			Rank: MinRank + g.src.IntN(MaxRank-MinRank+1),
		})
	}
	return users
}
