package core

import (
	"PharmaCS/entity"
	"fmt"
)

// ProductsInfo returns summaries for the requested product ids. Unknown ids
// are skipped rather than failing the whole request.
func (c *Core) ProductsInfo(ids []string) ([]entity.ProductInfo, error) {
	if c.catalog == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}

	var infos []entity.ProductInfo
	for _, id := range ids {
		if p, ok := c.catalog.Get(id); ok {
			infos = append(infos, p.Info())
		}
	}

	return infos, nil
}
