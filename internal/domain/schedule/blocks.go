package schedule

import "strconv"

// blockMarker is the first cell of every sentinel row that opens a block.
const blockMarker = "Block Format"

// Fixed block identifiers of the version-2 export.
const (
	teamsBlock           = 1
	rankingMatchesBlock  = 2
	judgingSessionsBlock = 3
	practiceMatchesBlock = 4
)

// blockSet partitions a document's rows by block identifier.
type blockSet map[int][][]string

// segmentBlocks scans rows (version row already consumed) for sentinel
// rows and collects every row strictly between consecutive sentinels
// under the preceding sentinel's identifier. Blocks may appear in any
// order; rows before the first sentinel are discarded.
func segmentBlocks(rows [][]string) blockSet {
	blocks := make(blockSet)
	current := -1
	for _, row := range rows {
		if cell(row, 0) == blockMarker {
			id, err := strconv.Atoi(cell(row, 1))
			if err != nil {
				current = -1
				continue
			}
			current = id
			if _, ok := blocks[current]; !ok {
				blocks[current] = nil
			}
			continue
		}
		if current >= 0 {
			blocks[current] = append(blocks[current], row)
		}
	}
	return blocks
}

// lines returns an independent copy of the block's rows. Callers may
// consume or mutate their copy freely; a missing block yields an empty
// sequence, never an error.
func (b blockSet) lines(id int) [][]string {
	src := b[id]
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = append([]string(nil), row...)
	}
	return out
}
