package searcher

import (
	"minigame/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MaxCutoff bounds playouts when no cutoff is configured.
const MaxCutoff = 1000

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines int
	episodes   int
	cutoff     int
	metrics    MetricsCollector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		cutoff:     MaxCutoff,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 {
		panic("Must specify search episodes")
	}
	return m
}

// Search runs the configured number of simulations from state and returns the
// most visited root move. The tree is discarded afterwards.
func (m *MCTS) Search(state State, rng *rand.Rand) (Move, SearchMetric, error) {
	m.metrics.Start(m.goroutines)
	t := newTree(state, rng, m.episodes+1)

	if m.goroutines <= 1 {
		for i := 0; i < m.episodes; i++ {
			m.simulate(t, state, rng)
		}
	} else {
		m.iterate(t, state, rng)
	}
	metric := m.metrics.Complete()

	move, ok := t.bestChild()
	if !ok {
		return nil, metric, game.ErrNoLegalMoves
	}
	log.Debug().
		Int("episodes", int(metric.Episodes)).
		Int("nodes", len(t.nodes)).
		Str("move", move.String()).
		Float64("share", t.policy()[move.String()]).
		Msg("mcts-search")
	return move, metric, nil
}

// iterate spreads the episodes over a bounded pool of workers sharing one tree.
// Each worker draws from its own generator, seeded from rng.
func (m *MCTS) iterate(t *tree, state State, rng *rand.Rand) {
	task := make(chan struct{}, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- struct{}{}
	}
	close(task)

	seeds := make([]uint64, m.goroutines)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i := 0; i < m.goroutines; i++ {
		workerRng := rand.New(rand.NewSource(seeds[i]))
		g.Go(func() error {
			for range task {
				m.simulate(t, state, workerRng)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (m *MCTS) simulate(t *tree, state State, rng *rand.Rand) {
	newNode, newState := m.selectThenExpand(t, state, rng)
	winner := m.rollout(newState, rng)
	t.Lock()
	t.backup(newNode, winner)
	t.Unlock()
	m.metrics.AddEpisode()
}

func (m *MCTS) selectThenExpand(t *tree, state State, rng *rand.Rand) (int, State) {
	t.Lock()
	defer t.Unlock()

	t.applyLoss(rootIndex)
	parent := rootIndex
	child, state, selected := t.selectOrExpand(parent, state, rng)
	for selected && child != parent {
		parent = child
		child, state, selected = t.selectOrExpand(parent, state, rng)
	}
	return child, state
}

func (m *MCTS) rollout(state State, rng *rand.Rand) game.Color {
	if state.Terminal() {
		m.metrics.AddFullPlayout()
		return state.Winner()
	}
	winner, complete := state.Playout(rng, m.cutoff)
	if complete {
		m.metrics.AddFullPlayout()
	}
	return winner
}
