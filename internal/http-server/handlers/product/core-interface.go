package product

import "PharmaCS/entity"

type Core interface {
	ProductsInfo(ids []string) ([]entity.ProductInfo, error)
}
