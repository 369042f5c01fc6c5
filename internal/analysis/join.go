package analysis

import (
	"context"
	"log/slog"

	"meshgrowth/internal/dataset"
)

// JoinSales resolves each transaction to its mesh block, mimicking an
// inner join on the property identifier. A duplicated property ID keeps
// its first mapping. Transactions whose property has no mapping, and
// mappings without a mesh-block code, are dropped without error: GNAF
// does not cover every property in a transaction feed.
func (a *Analyzer) JoinSales(ctx context.Context, properties []dataset.PropertyRecord, transactions []dataset.Transaction) []Sale {
	blockByProperty := make(map[string]string, len(properties))
	for _, p := range properties {
		if p.PropertyID == "" || p.MeshBlock == "" {
			continue
		}
		if _, seen := blockByProperty[p.PropertyID]; seen {
			continue
		}
		blockByProperty[p.PropertyID] = p.MeshBlock
	}

	sales := make([]Sale, 0, len(transactions))
	unmatched := 0
	for _, tx := range transactions {
		block, ok := blockByProperty[tx.PropertyID]
		if !ok {
			unmatched++
			continue
		}
		sales = append(sales, Sale{
			MeshBlock: block,
			Price:     tx.Price,
			Year:      tx.Year(),
		})
	}

	a.logger.InfoContext(ctx, "joined transactions to mesh blocks",
		slog.Int("property_count", len(blockByProperty)),
		slog.Int("matched", len(sales)),
		slog.Int("unmatched", unmatched))

	return sales
}
