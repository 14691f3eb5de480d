package usecase_recommend

import (
	"math"
	"time"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

const (
	fullGroupWatchlistBonus = 100.0
	perMemberWatchlistBonus = 25.0

	voteAverageWeight = 8.0
	voteCountWeight   = 3.0
	popularityWeight  = 2.0

	newReleaseBonus   = 15.0
	newReleaseWindow  = 2 // years
	classicBonus      = 10.0
	classicAgeFloor   = 20 // years

	highRatingBonus     = 20.0
	highRatingThreshold = 8.0

	lowVoteCountPenalty = -20.0
	lowVoteCountFloor   = 100
	imbalancePenalty    = -25.0
)

// signals are the per-candidate inputs beyond the catalog row itself.
type signals struct {
	memberCount    int
	watchlistCount int
	watchedCount   int
	avgRating      float64
	hasRating      bool
}

// score blends social proof, catalog quality, recency and the members'
// external ratings into one ranking value, floored at zero.
func score(c model.Candidate, s signals, now time.Time) model.ScoreBreakdown {
	b := model.ScoreBreakdown{
		Watchlist:  watchlistScore(s),
		Quality:    qualityScore(c),
		Recency:    recencyScore(c.ReleaseDate, now),
		UserRating: userRatingScore(s),
		Penalties:  penalties(c, s),
	}
	b.Total = math.Max(0, b.Watchlist+b.Quality+b.Recency+b.UserRating+b.Penalties)
	return b
}

// Full bonus when the whole room has it in their watchlists, otherwise a flat
// per-member bonus.
func watchlistScore(s signals) float64 {
	if s.watchlistCount == 0 {
		return 0
	}
	if s.watchlistCount == s.memberCount {
		return fullGroupWatchlistBonus
	}
	return perMemberWatchlistBonus * float64(s.watchlistCount)
}

func qualityScore(c model.Candidate) float64 {
	score := c.VoteAverage * voteAverageWeight
	if c.VoteCount > 0 {
		score += math.Log10(float64(c.VoteCount)) * voteCountWeight
	}
	if c.Popularity > 0 {
		score += math.Log10(c.Popularity) * popularityWeight
	}
	return score
}

// Recent releases and old classics each get a flat bonus; the two are
// mutually exclusive.
func recencyScore(releaseDate string, now time.Time) float64 {
	released, err := time.Parse("2006-01-02", releaseDate)
	if err != nil {
		return 0
	}
	switch {
	case released.After(now.AddDate(-newReleaseWindow, 0, 0)):
		return newReleaseBonus
	case !released.After(now.AddDate(-classicAgeFloor, 0, 0)):
		return classicBonus
	default:
		return 0
	}
}

func userRatingScore(s signals) float64 {
	if !s.hasRating {
		return 0
	}
	var score float64
	if s.avgRating > highRatingThreshold {
		score += highRatingBonus
	}
	if s.avgRating > 5 {
		score += (s.avgRating - 5) * 5
	}
	return score
}

func penalties(c model.Candidate, s signals) float64 {
	var p float64
	if c.VoteCount < lowVoteCountFloor {
		p += lowVoteCountPenalty
	}
	// A title only part of the group has seen skews the session.
	if s.watchedCount > 0 && s.watchedCount < s.memberCount {
		p += imbalancePenalty
	}
	return p
}
