package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"
	"s2dio.backend/internal/domain/entities"
	"s2dio.backend/pkg/logger"
)

const (
	searchQuery   = "vibing"
	searchLimit   = 50
	trendingLimit = 25

	// Layout mirrors the JS Date.toDateString() representation so the seed
	// is a fixed, locale-independent identifier for the calendar day.
	dateLayout = "Mon Jan 02 2006"
)

// fallbackGif is served when both provider calls fail; the endpoint never
// returns an empty body.
var fallbackGif = entities.Gif{
	ID:        "fallback",
	Title:     "MODO BRUTAL ACTIVADO",
	URL:       "https://media.giphy.com/media/13HgwGsXF0aiGY/giphy.gif",
	Thumbnail: "https://media.giphy.com/media/13HgwGsXF0aiGY/200.gif",
}

// GifProvider fetches gif candidates from an external source.
type GifProvider interface {
	Search(ctx context.Context, query string, limit int) ([]*entities.Gif, error)
	Trending(ctx context.Context, limit int) ([]*entities.Gif, error)
}

// GifUsecase picks one gif per calendar day from an external provider.
type GifUsecase struct {
	provider GifProvider
	now      func() time.Time
}

// NewGifUsecase creates a new gif usecase
func NewGifUsecase(provider GifProvider) *GifUsecase {
	return &GifUsecase{
		provider: provider,
		now:      time.Now,
	}
}

// GifOfTheDay returns the day's pick. The selection is stateless: every call
// on the same UTC calendar day lands on the same candidate. Provider failures
// fall through search -> trending -> fixed fallback, so an error is never
// returned to the caller.
func (u *GifUsecase) GifOfTheDay(ctx context.Context) *entities.Gif {
	today := u.now().UTC()

	gifs, err := u.provider.Search(ctx, searchQuery, searchLimit)
	if err != nil {
		logger.Warn(ctx, "Gif search unavailable, trying trending", zap.Error(err))
		gifs = nil
	}
	if gif := pickOfDay(gifs, today); gif != nil {
		return gif
	}

	gifs, err = u.provider.Trending(ctx, trendingLimit)
	if err != nil {
		logger.Warn(ctx, "Gif trending unavailable, using fallback", zap.Error(err))
		gifs = nil
	}
	if gif := pickOfDay(gifs, today); gif != nil {
		return gif
	}

	fallback := fallbackGif
	return &fallback
}

// pickOfDay deterministically selects one candidate for the given day, or nil
// when there are no candidates.
func pickOfDay(gifs []*entities.Gif, day time.Time) *entities.Gif {
	if len(gifs) == 0 {
		return nil
	}
	return gifs[dailyIndex(day, len(gifs))]
}

// dailyIndex maps a calendar day onto [0, n). The seed is the sum of the
// character codes of the day's date string.
func dailyIndex(day time.Time, n int) int {
	seed := 0
	for _, b := range []byte(day.Format(dateLayout)) {
		seed += int(b)
	}
	return seed % n
}
