package session

import (
	"minigame/config"
	"minigame/difficulty"
	"minigame/game"
	"minigame/game/morris"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrSessionOver is returned for input after the session terminated.
var ErrSessionOver = errors.New("session is over")

// Human is the color of the human player, who always moves first.
const Human = game.Black

// State is the phase of the session driver.
type State int

const (
	AwaitingHumanMove State = iota
	AIComputing
	Terminal
)

func (s State) String() string {
	switch s {
	case AwaitingHumanMove:
		return "awaiting-human-move"
	case AIComputing:
		return "ai-computing"
	default:
		return "terminal"
	}
}

// Snapshot is the read-only view handed to renderers after every change.
type Snapshot struct {
	Board
	Difficulty     difficulty.Tier
	State          State
	ForfeitPending bool
	Outcome        *Outcome
}

type Option func(s *Session)

// WithConfig replaces the default engine configuration.
func WithConfig(cfg config.Config) Option {
	return func(s *Session) {
		s.config = cfg
	}
}

// WithObserver registers a function called with a snapshot after every state
// change.
func WithObserver(observer func(Snapshot)) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithCaptureSelector resolves Morris captures the human input does not list.
func WithCaptureSelector(selector morris.CaptureSelector) Option {
	return func(s *Session) {
		s.selector = selector
	}
}

// Session is one human-versus-engine game. Difficulty and search parameters
// are fixed when it starts. A Session is not safe for concurrent use.
type Session struct {
	kind     game.Kind
	tier     difficulty.Tier
	config   config.Config
	search   difficulty.SearchConfig
	selector morris.CaptureSelector
	observer func(Snapshot)

	match          Match
	rng            *rand.Rand
	state          State
	forfeitPending bool
	outcome        *Outcome
}

// New starts a session of kind at tier. All engine randomness derives from seed.
func New(kind game.Kind, tier difficulty.Tier, seed uint64, options ...Option) (*Session, error) {
	s := &Session{
		kind:   kind,
		tier:   tier,
		config: config.Default(),
		rng:    rand.New(rand.NewSource(seed)),
		state:  AwaitingHumanMove,
	}
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	search, err := s.config.Difficulty.SearchConfig(kind, tier)
	if err != nil {
		return nil, err
	}
	s.search = search
	if s.match, err = NewMatch(kind, s.config.Search, s.selector); err != nil {
		return nil, err
	}

	log.Info().
		Str("game", kind.String()).
		Str("difficulty", tier.String()).
		Uint64("seed", seed).
		Msg("session-start")
	s.notify()
	return s, nil
}

func (s *Session) State() State { return s.state }

// Outcome returns the result once the session has terminated, nil before.
func (s *Session) Outcome() *Outcome { return s.outcome }

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:          s.match.Board(),
		Difficulty:     s.tier,
		State:          s.state,
		ForfeitPending: s.forfeitPending,
		Outcome:        s.outcome,
	}
}

// Handle processes one human input. When the input ends the session the
// outcome is returned. An illegal move is returned as an error and the human
// must try again; the board is unchanged. After a legal move the engine
// replies before Handle returns. If that reply failed, the next input retries
// it and is discarded so the human sees the new position first.
func (s *Session) Handle(in Input) (*Outcome, error) {
	if s.state == Terminal {
		return nil, ErrSessionOver
	}

	if in.Kind == Cancel {
		if s.forfeitPending {
			return s.finish(game.Empty, Forfeited), nil
		}
		s.forfeitPending = true
		log.Debug().Msg("forfeit-pending")
		s.notify()
		return nil, nil
	}
	if s.forfeitPending {
		s.forfeitPending = false
		s.notify()
	}

	if s.match.ToMove() != Human {
		return s.reply()
	}
	if err := s.match.Play(in); err != nil {
		reason, _ := game.ReasonOf(err)
		log.Debug().Str("input", in.String()).Str("reason", string(reason)).Err(err).Msg("input-rejected")
		return nil, err
	}
	if over, winner, reason := s.match.Status(); over {
		return s.finish(winner, reason), nil
	}

	return s.reply()
}

// reply runs the engine. On failure the session waits for the human again and
// the next non-cancel input retries the reply.
func (s *Session) reply() (*Outcome, error) {
	s.state = AIComputing
	s.notify()
	move, metric, err := s.match.Respond(s.search, s.rng)
	if err != nil {
		s.state = AwaitingHumanMove
		s.notify()
		return nil, errors.Wrapf(err, "%s engine failed to move", s.kind)
	}
	log.Debug().
		Str("move", move).
		Int64("episodes", metric.Episodes).
		Int64("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("ai-move")
	if over, winner, reason := s.match.Status(); over {
		return s.finish(winner, reason), nil
	}

	s.state = AwaitingHumanMove
	s.notify()
	return nil, nil
}

func (s *Session) finish(winner game.Color, reason Reason) *Outcome {
	result := resultFor(winner, Human)
	if reason == Forfeited {
		result = Forfeit
		winner = Human.Opponent()
	}
	s.outcome = &Outcome{
		Game:       s.kind,
		Difficulty: s.tier,
		Result:     result,
		Reason:     reason,
		Winner:     winner,
		Moves:      s.match.Moves(),
	}
	s.state = Terminal
	s.forfeitPending = false
	log.Info().
		Str("game", s.kind.String()).
		Str("difficulty", s.tier.String()).
		Str("result", result.String()).
		Str("reason", string(reason)).
		Int("moves", s.outcome.Moves).
		Msg("session-end")
	s.notify()
	return s.outcome
}

func (s *Session) notify() {
	if s.observer != nil {
		s.observer(s.Snapshot())
	}
}
