package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"minigame/difficulty"
	"minigame/game"
	"minigame/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "ladder")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "ladder"), filepath.Dir(writer.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Tier: difficulty.Novice, SearchConfig: difficulty.SearchConfig{Depth: 2, RandomMoveProbability: 0.5}},
			{ID: 2, Tier: difficulty.Master, SearchConfig: difficulty.SearchConfig{Simulations: 20000}},
		}

		require.NoError(t, writer.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Header plus one row per agent")
		require.Equal(t, []string{"1", "novice", "2", "0", "0.5"}, rows[1])
		require.Equal(t, []string{"2", "master", "0", "20000", "0"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				Game:           game.Gomoku,
				StartingPlayer: 2,
				Winner:         game.White,
				Reason:         "five-in-row",
				StartTime:      start,
				EndTime:        start.Add(time.Minute),
				Duration:       time.Minute,
				TotalMoves:     31,
			},
		}}

		require.NoError(t, writer.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "gomoku", "1", "2", "2", "white", "five-in-row",
			"2024-05-01T12:00:00Z", "2024-05-01T12:01:00Z", "1m0s", "31"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         3,
				Player:       game.Black,
				Move:         "E5",
				SearchMetric: searcher.SearchMetric{Duration: time.Second, Episodes: 500, FullPlayouts: 120},
			},
		}}

		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "move", "duration", "episodes", "full_playouts", "nodes"}, rows[0])
		require.Equal(t, []string{"1", "3", "black", "E5", "1s", "500", "120", "0"}, rows[1])
	})
}
