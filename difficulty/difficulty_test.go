package difficulty

import (
	"testing"

	"minigame/game"

	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		tier        Tier
		simulations int
		depth       int
		random      float64
	}{
		{Novice, 500, 2, 0.5},
		{Apprentice, 2000, 3, 0},
		{Journeyman, 8000, 4, 0},
		{Master, 20000, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			goCfg, err := table.SearchConfig(game.Go, tt.tier)
			require.NoError(t, err)
			require.Equal(t, SearchConfig{Simulations: tt.simulations}, goCfg)

			gomokuCfg, err := table.SearchConfig(game.Gomoku, tt.tier)
			require.NoError(t, err)
			require.Equal(t, SearchConfig{Depth: tt.depth}, gomokuCfg)

			morrisCfg, err := table.SearchConfig(game.Morris, tt.tier)
			require.NoError(t, err)
			require.Equal(t, SearchConfig{Depth: tt.depth, RandomMoveProbability: tt.random}, morrisCfg)
		})
	}

	require.NoError(t, table.Validate())
}

func TestParseTier(t *testing.T) {
	t.Run("parsing known tiers", func(t *testing.T) {
		for _, tier := range Tiers {
			got, err := ParseTier(" " + tier.String() + " ")
			require.NoError(t, err)
			require.Equal(t, tier, got)
		}
	})

	t.Run("rejecting unknown tier", func(t *testing.T) {
		_, err := ParseTier("grandmaster")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejecting zero budget", func(t *testing.T) {
		table := DefaultTable()
		table.Master.GoSimulations = 0
		require.Error(t, table.Validate())
	})

	t.Run("rejecting probability above one", func(t *testing.T) {
		table := DefaultTable()
		table.Novice.MorrisRandom = 1.5
		require.Error(t, table.Validate())
	})

	t.Run("rejecting unknown tier", func(t *testing.T) {
		_, err := DefaultTable().SearchConfig(game.Go, Tier(9))
		require.Error(t, err)
	})
}
