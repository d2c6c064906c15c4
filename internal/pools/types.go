package pools

import "poolbalance/internal/store/model"

// CreateRequest is the JSON body for POST /api/pools. A zero VolumeGallons
// is derived from VolumeLiters.
type CreateRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	VolumeLiters  float64 `json:"volume_liters" validate:"finite,gt=0"`
	VolumeGallons float64 `json:"volume_gallons" validate:"finite,gte=0"`
	DefaultUnits  string  `json:"default_units" validate:"omitempty,units"`
}

const gallonsPerLiter = 0.264172

func (c CreateRequest) toModel() model.Pool {
	gallons := c.VolumeGallons
	if gallons == 0 {
		gallons = c.VolumeLiters * gallonsPerLiter
	}
	return model.NewPool(c.Name, c.VolumeLiters, gallons, c.DefaultUnits)
}
