package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

var _ datasources.LocalNewsLoader = LocalNews{}

// LocalNews loads the curated article list maintained alongside the site.
type LocalNews struct {
	Path string
}

func (l LocalNews) LoadLocalNews(_ context.Context) (domain.LocalNews, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.LocalNews{}, fmt.Errorf("reading local news %s: %w", l.Path, datasources.ErrNotFound)
	}
	if err != nil {
		return domain.LocalNews{}, fmt.Errorf("reading local news %s: %w", l.Path, err)
	}

	var news domain.LocalNews
	if err := json.Unmarshal(data, &news); err != nil {
		return domain.LocalNews{}, fmt.Errorf("decoding local news %s: %w", l.Path, err)
	}
	return news, nil
}
