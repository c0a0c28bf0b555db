package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nanosep/portfolio/internal/theme"
	"github.com/nanosep/portfolio/internal/types"
)

const themePromptTemplate = `Here is a vocabulary frequency list from a photo/video portfolio of %d files across albums [%s]:

%s

Propose 8-12 thematic categories that would make sense as album filters for this portfolio. Each category should:
- Cover a meaningful visual/content theme (not technical metadata)
- Be broad enough to have at least 10-15 photos
- Be distinct enough not to overlap heavily with others
- Have a short, clear label (1-3 words, in English)

Return ONLY a JSON array like:
[
  { "tag": "urban", "label": "Urban & City", "keywords": ["street", "building", "city"] },
  ...
]`

// vocabLimit bounds how many words go into the prompt.
const vocabLimit = 200

// ProposeThemes asks the model for theme categories given the portfolio's
// filename vocabulary.
func (c *Client) ProposeThemes(ctx context.Context, vocab []theme.WordCount, totalFiles int, albums []string) ([]types.Theme, error) {
	if len(vocab) > vocabLimit {
		vocab = vocab[:vocabLimit]
	}
	words := make([]string, len(vocab))
	for i, wc := range vocab {
		words[i] = fmt.Sprintf("%s(%d)", wc.Word, wc.Count)
	}

	prompt := fmt.Sprintf(themePromptTemplate, totalFiles, strings.Join(albums, ", "), strings.Join(words, ", "))

	reply, err := c.Complete(ctx, 1024, []ContentBlock{TextBlock(prompt)})
	if err != nil {
		return nil, err
	}

	var themes []types.Theme
	if err := ExtractJSON(reply, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

const tagPromptTemplate = `Here are the available thematic tags for a photo/video portfolio:
%s

Assign 1-3 tags to each file based on its filename. The filenames are descriptive.
Files:
%s

Return ONLY a JSON object mapping each filepath to an array of tag strings:
{
  "album/filename.jpg": ["tag1", "tag2"],
  ...
}`

// AssignTags tags the given media items in batches. A failed batch leaves
// its files untagged and reports through onBatch rather than aborting.
func (c *Client) AssignTags(ctx context.Context, items []types.MediaItem, themes []types.Theme, batchSize int, onBatch func(batch, batches, tagged int, err error)) (map[string][]string, error) {
	themesJSON, err := json.Marshal(themes)
	if err != nil {
		return nil, err
	}

	results := make(map[string][]string, len(items))
	batches := (len(items) + batchSize - 1) / batchSize

	for bi := 0; bi < batches; bi++ {
		batch := items[bi*batchSize : min((bi+1)*batchSize, len(items))]

		paths := make([]string, len(batch))
		for i, it := range batch {
			paths[i] = it.Path
		}
		prompt := fmt.Sprintf(tagPromptTemplate, themesJSON, strings.Join(paths, "\n"))

		var batchResults map[string][]string
		reply, err := c.Complete(ctx, 4096, []ContentBlock{TextBlock(prompt)})
		if err == nil {
			err = ExtractJSON(reply, &batchResults)
		}
		if err != nil {
			// Leave this batch untagged and carry on.
			for _, it := range batch {
				results[it.Path] = []string{}
			}
			if onBatch != nil {
				onBatch(bi+1, batches, 0, err)
			}
			continue
		}

		for path, tags := range batchResults {
			results[path] = tags
		}
		if onBatch != nil {
			onBatch(bi+1, batches, len(batchResults), nil)
		}
	}
	return results, nil
}
