package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/reflow/model"
)

// PlaceholderText is the body of every figure-placeholder block
const PlaceholderText = "[visual content detected here]"

// sectionNumber matches numbered section headings like "2 Method" or
// "3.1.2 Results".
var sectionNumber = regexp.MustCompile(`^\d+(\.\d+)*\s+\S`)

// BlockClassifier turns a page's line stream into typed blocks using
// vertical-gap heuristics. Table detection is gap-based only: it uses the
// cheapest reliable signal available without true table-structure
// detection and intentionally over-fires on wide-spaced prose, since
// downstream consumers tolerate malformed tables better than missing ones.
type BlockClassifier struct {
	config Config
}

// NewBlockClassifier creates a classifier with default configuration
func NewBlockClassifier() *BlockClassifier {
	return &BlockClassifier{config: DefaultConfig()}
}

// NewBlockClassifierWithConfig creates a classifier with custom configuration
func NewBlockClassifierWithConfig(config Config) *BlockClassifier {
	return &BlockClassifier{config: config}
}

// Classify walks the line stream and emits typed blocks in reading order.
// Ambiguous input classifies as paragraph; the method never fails.
func (c *BlockClassifier) Classify(lines []Line, signal model.VisualSignal) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	median := medianLineHeight(lines)

	var blocks []model.Block
	builder := NewParagraphBuilder()

	flush := func() {
		text, rng, flushed, ok := builder.Flush()
		if !ok {
			return
		}
		blocks = append(blocks, model.Block{
			Type:        c.paragraphType(flushed, median),
			Text:        text,
			SourceLines: rng,
		})
	}

	lastBottom := 0.0
	havePrev := false

	for _, line := range lines {
		// The gap rule applies to every line following a vertical gap,
		// table rows included, so it runs before table detection.
		if havePrev {
			gap := line.Y() - lastBottom
			height := line.Height()
			if height <= 0 {
				height = defaultLineHeight
			}

			switch {
			case gap > height*c.config.VisualGapMultiplier && signal.Any():
				// A visual placeholder marks the gap instead of blank space.
				// Its line range is empty: it covers the boundary before
				// the line, not the line itself.
				flush()
				blocks = append(blocks, model.Block{
					Type:        model.FigurePlaceholder,
					Text:        PlaceholderText,
					SourceLines: model.LineRange{Start: line.Index, End: line.Index},
				})
			case gap > height*c.config.ParagraphGapMultiplier:
				flush()
			}
		}

		if c.IsTableRow(line) {
			flush()
			blocks = append(blocks, model.Block{
				Type:        model.TableRow,
				Text:        renderTableRow(line.Cells(c.config.TableGapThreshold)),
				SourceLines: model.LineRange{Start: line.Index, End: line.Index + 1},
			})
		} else {
			builder.Add(line)
		}

		lastBottom = line.Bottom()
		havePrev = true
	}

	flush()
	return blocks
}

// IsTableRow reports whether a line classifies as a table row: more tokens
// than the minimum and a maximum inter-token gap over the threshold.
func (c *BlockClassifier) IsTableRow(line Line) bool {
	return len(line.Tokens) > c.config.TableMinTokens &&
		line.MaxGap() > c.config.TableGapThreshold
}

// paragraphType decides between paragraph and heading for a flushed group
// of lines. Only single-line groups qualify as headings: short lines that
// are markedly taller than the page median, or numbered-section lines.
func (c *BlockClassifier) paragraphType(lines []Line, medianHeight float64) model.BlockType {
	if len(lines) != 1 {
		return model.Paragraph
	}

	line := lines[0]
	words := line.WordCount()
	if words == 0 || words > c.config.HeadingMaxWords {
		return model.Paragraph
	}

	if medianHeight > 0 && line.Height() >= medianHeight*c.config.HeadingHeightRatio {
		return model.Heading
	}
	if sectionNumber.MatchString(line.Text()) {
		return model.Heading
	}

	return model.Paragraph
}

// renderTableRow renders cells as a delimiter-joined sequence
func renderTableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// medianLineHeight returns the median of the lines' heights
func medianLineHeight(lines []Line) float64 {
	if len(lines) == 0 {
		return 0
	}

	heights := make([]float64, 0, len(lines))
	for _, line := range lines {
		if h := line.Height(); h > 0 {
			heights = append(heights, h)
		}
	}
	if len(heights) == 0 {
		return 0
	}

	sort.Float64s(heights)
	return heights[len(heights)/2]
}
