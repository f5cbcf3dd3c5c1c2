package dto

import "substock/internal/domain/settings"

// DrugConfigRequest sets threshold and cabinet for one drug code.
type DrugConfigRequest struct {
	Code     string `json:"code" binding:"required"`
	MinStock int64  `json:"minStock"`
	Cabinet  string `json:"cabinet"`
}

// ToDrugConfig converts to domain config.
func (r DrugConfigRequest) ToDrugConfig() settings.DrugConfig {
	return settings.DrugConfig{
		Code:     r.Code,
		MinStock: r.MinStock,
		Cabinet:  r.Cabinet,
	}
}

// AddRequesterRequest adds a signer to the roster.
type AddRequesterRequest struct {
	Name string `json:"name" binding:"required"`
}
