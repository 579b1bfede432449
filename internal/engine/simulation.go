// Package engine ties the day systems together: the segment scheduler, the
// market, the micro-decision engine and the rival systems, run strictly in
// day order.
package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/catalog"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/decision"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/dice"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/market"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/rival"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/schedule"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/weather"
)

// RivalState is one competitor's full state: entity plus its store and
// product snapshots.
type RivalState struct {
	Competitor game.Competitor
	Store      game.Store
	Product    game.Product
}

// Simulation holds the complete game state and wires systems together. The
// simulation is single-threaded and turn-sequential: one day's segments
// resolve strictly in order.
type Simulation struct {
	Balance config.Balance
	Catalog *catalog.Catalog

	Scheduler *schedule.Scheduler
	Market    *market.Simulator
	District  *market.LegacyMarket
	Decisions *decision.Engine
	Analysis  *rival.Engine
	Ledger    *rival.Ledger
	Weather   *weather.Generator

	Player  game.Player
	Store   game.Store
	Product game.Product

	Rivals    []RivalState
	Profile   rival.Profile // rolling window of the player's turns
	Customers []market.CustomerAI

	// Per-day working state.
	DayDecisions []decision.Decision
	dayActions   []string
	daySpent     int

	rng entropy.Source
}

// NewSimulation builds a fully wired simulation from a seed.
func NewSimulation(bal config.Balance, cat *catalog.Catalog, seed int64, startDate time.Time) *Simulation {
	rng := entropy.NewSeeded(seed)

	product := game.NewProduct("Fried chicken", 20_000)
	store := game.NewStore("Cluck & Co", 60_000, product.ID)
	store = store.WithIngredients(60)
	player := game.NewPlayer("Owner", 500_000, store.ID)

	turn := game.Turn{Number: 1, Date: startDate}

	sim := &Simulation{
		Balance:   bal,
		Catalog:   cat,
		Scheduler: schedule.NewScheduler(cat, dice.NewResolver(rng), bal, turn),
		Market:    market.NewSimulator(bal),
		District:  market.NewLegacyMarket(bal, rng),
		Decisions: decision.NewEngine(decision.DefaultTemplates(), bal.DecisionsPerDay, rng),
		Analysis:  rival.NewEngine(bal.HighSpendThreshold),
		Ledger:    rival.NewLedger(),
		Weather:   weather.NewGenerator(seed),
		Player:    player,
		Store:     store,
		Product:   product,
		Profile:   rival.NewProfile(bal.AnalysisWindowTurns),
		Customers: market.NewCustomerPool(40, rng),
		rng:       rng,
	}
	sim.AddRival("Golden Hen", 400_000)
	sim.AddRival("Wing Castle", 400_000)
	return sim
}

// AddRival creates a competitor with its own store and product.
func (s *Simulation) AddRival(name string, money int) {
	product := game.NewProduct(name+" special", 19_000)
	store := game.NewStore(name, 55_000, product.ID)
	s.Rivals = append(s.Rivals, RivalState{
		Competitor: game.NewCompetitor(name, money, store.ID),
		Store:      store,
		Product:    product,
	})
}

// QueueAction queues a card for the current segment, tracking the day's
// footprint for the rival analysis window.
func (s *Simulation) QueueAction(cardID string) error {
	if err := s.Scheduler.QueueAction(cardID, s.Player, s.Store); err != nil {
		return err
	}
	card, _ := s.Catalog.Lookup(cardID)
	s.dayActions = append(s.dayActions, cardID)
	s.daySpent += card.MoneyCost
	return nil
}

// ConfirmSegment resolves the queue and advances the scheduler, folding the
// outcomes into the entity snapshots.
func (s *Simulation) ConfirmSegment() ([]dice.Outcome, error) {
	p, st, pr, outcomes, err := s.Scheduler.ConfirmSegment(s.Player, s.Store, s.Product)
	if err != nil {
		return nil, err
	}
	s.Player, s.Store, s.Product = p, st, pr
	return outcomes, nil
}

// StartBusiness samples the day's decision cards. Call after entering the
// BUSINESS segment.
func (s *Simulation) StartBusiness() []decision.Decision {
	s.DayDecisions = s.Decisions.SampleDay(int(s.Scheduler.Clock().Budget(game.SegmentBusiness)))
	return s.DayDecisions
}

// AnswerDecision resolves one pending decision by id.
func (s *Simulation) AnswerDecision(id uuid.UUID, choice decision.Choice) error {
	for i, d := range s.DayDecisions {
		if d.ID != id {
			continue
		}
		resolved, p, st, err := s.Decisions.Resolve(d, choice, s.Player, s.Store)
		if err != nil {
			return err
		}
		s.DayDecisions[i] = resolved
		s.Player, s.Store = p, st
		return nil
	}
	return &game.EntityNotFoundError{Kind: "decision", ID: id.String()}
}

// RunBusiness runs the aggregate market for the player's store and completes
// the BUSINESS segment. The segment is validated before anything settles, so
// a rejected call leaves every entity snapshot untouched.
func (s *Simulation) RunBusiness() (market.Result, error) {
	if s.Scheduler.Segment() != game.SegmentBusiness {
		return market.Result{}, &schedule.InvalidSegmentTransitionError{
			Op:      "run_business",
			Current: s.Scheduler.Segment(),
		}
	}

	cond := s.Weather.ForDay(s.Scheduler.Turn().Number)
	res := s.Market.SimulateDay(market.Inputs{
		Hours:       s.Scheduler.Clock().Budget(game.SegmentBusiness),
		Reputation:  s.Store.Reputation,
		PreparedQty: s.Store.PreparedQty,
		Freshness:   s.Store.IngredientFreshness,
		Price:       s.Product.Price,
		Decisions:   s.DayDecisions,
		Footfall:    cond.Footfall,
	})
	s.Player, s.Store, s.Product = s.Market.Settle(res, s.Player, s.Store, s.Product)
	if err := s.Scheduler.CompleteBusiness(); err != nil {
		return market.Result{}, err
	}
	return res, nil
}

// Sleep closes the day: rent is due, the player's turn is recorded into the
// analysis window, rivals settle and react, and the scheduler rolls into the
// next day's PREP.
func (s *Simulation) Sleep() (DayReport, error) {
	turn := s.Scheduler.Turn()

	// Rent before lights out.
	s.Player = s.Player.WithMoney(s.Player.Money - s.Store.Rent)

	// Record the day's footprint for the rival analysis engines.
	tempo := float64(len(s.dayActions)) * 2
	if tempo > 10 {
		tempo = 10
	}
	s.Profile = s.Profile.WithRecord(game.TurnRecord{
		TurnNumber:  turn.Number,
		Actions:     s.dayActions,
		MoneySpent:  s.daySpent,
		TimingScore: tempo,
	})

	report := s.runRivals(turn)

	p, st, pr, err := s.Scheduler.ResolveSleep(s.Player, s.Store, s.Product)
	if err != nil {
		return DayReport{}, err
	}
	s.Player, s.Store, s.Product = p, st, pr
	s.Customers = market.GrowDesire(s.Customers, s.Balance)
	s.dayActions = nil
	s.daySpent = 0
	s.DayDecisions = nil

	report.Turn = turn
	report.PlayerMoney = s.Player.Money
	report.Reputation = s.Store.Reputation
	return report, nil
}

// DayReport summarizes one completed day.
type DayReport struct {
	Turn        game.Turn
	PlayerMoney int
	Reputation  float64

	RivalDecisions map[string]rival.AIDecision
	Executed       map[string][]rival.DelayedAction
	Eliminated     []string
}

// runRivals settles competitor commerce, runs the analysis engines, executes
// due delayed actions and applies the bankruptcy lifecycle.
func (s *Simulation) runRivals(turn game.Turn) DayReport {
	report := DayReport{
		RivalDecisions: make(map[string]rival.AIDecision),
		Executed:       make(map[string][]rival.DelayedAction),
	}

	// District commerce: rivals earn their share of shared footfall. The
	// player participates in the averages so both tiers price against the
	// same market, but the player's own sales ran through the segmented day.
	cond := s.Weather.ForDay(turn.Number)
	footfall := int(float64(120) * cond.Footfall)
	parts := make([]market.Participant, 0, len(s.Rivals)+1)
	parts = append(parts, market.Participant{
		Name:      s.Store.Name,
		Price:     s.Product.Price,
		Quality:   s.Product.Quality,
		Awareness: s.Product.Awareness,
	})
	for _, r := range s.Rivals {
		if r.Competitor.Bankrupt() {
			continue
		}
		parts = append(parts, market.Participant{
			Name:      r.Store.Name,
			Price:     r.Product.Price,
			Quality:   r.Product.Quality,
			Awareness: r.Product.Awareness,
		})
	}
	shares, customers := s.District.SimulateFootfall(footfall, parts, s.Customers)
	s.Customers = customers
	revenueByStore := make(map[string]int, len(shares))
	for _, sh := range shares {
		revenueByStore[sh.Name] = sh.Revenue
	}

	survivors := s.Rivals[:0]
	for _, r := range s.Rivals {
		// Settlement: district revenue minus daily upkeep.
		if !r.Competitor.Bankrupt() {
			net := r.Competitor.Money + revenueByStore[r.Store.Name] - r.Store.Rent
			r.Competitor = r.Competitor.WithMoney(net, turn.Date)
		}

		// Behavioral read on the player, then a concrete move scheduled for
		// a near-future turn. Bankrupt competitors sit out: they cannot fund
		// a move, so scheduling would only pile up ledger entries that die
		// with the elimination.
		if !r.Competitor.Bankrupt() {
			profile := s.Analysis.Analyze(s.Profile)
			strategy := rival.RecommendStrategy(profile)
			aiDecision := rival.Decide(strategy)
			r.Competitor.Strategy = strategy
			report.RivalDecisions[r.Competitor.Name] = aiDecision
			if aiDecision.ActionType != "hold" {
				s.Ledger.Schedule(r.Competitor.ID, rival.DelayedAction{
					Type:       aiDecision.ActionType,
					TargetTurn: turn.Number + 1 + s.rng.Intn(2),
					Params:     map[string]int{"amount": aiDecision.TargetAmount},
				})
			}
		}

		// Execute whatever has come due.
		due := s.Ledger.Due(r.Competitor.ID, turn.Number)
		for _, a := range due {
			r = s.executeRivalAction(r, a, turn.Date)
		}
		if len(due) > 0 {
			report.Executed[r.Competitor.Name] = due
		}

		if rival.ShouldEliminate(r.Competitor, turn.Date, s.Balance.BankruptcyWindowDays) {
			s.Ledger.Eliminate(r.Competitor.ID)
			report.Eliminated = append(report.Eliminated, r.Competitor.Name)
			slog.Info("competitor eliminated",
				"name", r.Competitor.Name,
				"bankrupt_days", r.Competitor.BankruptDays(turn.Date),
			)
			continue
		}
		survivors = append(survivors, r)
	}
	s.Rivals = survivors
	return report
}

// executeRivalAction applies one due delayed action to a rival's state.
func (s *Simulation) executeRivalAction(r RivalState, a rival.DelayedAction, now time.Time) RivalState {
	amount := a.Params["amount"]
	bal := s.Balance
	switch a.Type {
	case "cut_price":
		r.Product = r.Product.WithPrice(r.Product.Price*9/10, bal.PriceStep, bal.PriceMin, bal.PriceMax)
	case "raise_price":
		r.Product = r.Product.WithPrice(r.Product.Price*11/10, bal.PriceStep, bal.PriceMin, bal.PriceMax)
	case "invest_quality":
		if r.Competitor.Money >= amount {
			r.Competitor = r.Competitor.WithMoney(r.Competitor.Money-amount, now)
			r.Product = r.Product.WithQuality(r.Product.Quality + 5)
		}
	case "buy_ads":
		if r.Competitor.Money >= amount {
			r.Competitor = r.Competitor.WithMoney(r.Competitor.Money-amount, now)
			r.Product = r.Product.WithAwareness(r.Product.Awareness + 15)
		}
	case "build_reserve", "steady_operations":
		// No state change; the money simply stays put.
	}
	return r
}
