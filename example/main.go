package main

import (
	"errors"

	"github.com/mgnsk/dlist"
	"github.com/mgnsk/dlist/list"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	l := list.New[string](
		list.WithLogger(logger),
		list.WithName("playlist"),
	)

	l.Add("intro")
	l.Add("verse")
	l.Add("outro")

	if err := l.AddAfter("chorus", "verse"); err != nil {
		panic(err)
	}

	logger.Info("built list", zap.Stringer("list", l), zap.Int("len", l.Len()))

	// Walk backwards and drop the intro through the cursor.
	c, err := l.CursorAt(l.Len())
	if err != nil {
		panic(err)
	}

	for {
		ok, err := c.HasPrevious()
		if err != nil {
			panic(err)
		}
		if !ok {
			break
		}

		v, err := c.Previous()
		if err != nil {
			panic(err)
		}

		if v == "intro" {
			if err := c.Remove(); err != nil {
				panic(err)
			}
		}
	}

	logger.Info("removed intro", zap.Stringer("list", l))

	// Any other change invalidates the cursor.
	l.AddToFront("count-in")

	if _, err := c.Next(); errors.Is(err, dlist.ErrStaleCursor) {
		logger.Info("cursor invalidated", zap.Uint64("version", l.Version()))
	}

	for v := range l.All() {
		logger.Info("track", zap.String("name", v))
	}
}
