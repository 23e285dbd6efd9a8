package services

import (
	"thisorthat/internal/models/db_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
)

func designToRow(d preference.Design) db_models.Design {
	row := db_models.Design{
		ID:       d.ID,
		Name:     d.Name,
		Image:    d.Image,
		Category: d.Category,
		Colors:   d.Colors,
	}
	for _, c := range preference.Categories {
		for i, v := range d.Tags[c] {
			row.Tags = append(row.Tags, db_models.DesignTag{
				DesignID: d.ID,
				Category: string(c),
				Value:    v,
				Position: i,
			})
		}
	}
	return row
}

// rowToDesign expects tags ordered by category then position.
func rowToDesign(row db_models.Design) preference.Design {
	d := preference.Design{
		ID:       row.ID,
		Name:     row.Name,
		Image:    row.Image,
		Category: row.Category,
		Tags:     make(map[preference.Category][]string),
	}
	if len(row.Colors) > 0 {
		d.Colors = append([]string(nil), row.Colors...)
	}
	for _, t := range row.Tags {
		c, ok := preference.ParseCategory(t.Category)
		if !ok {
			continue
		}
		d.Tags[c] = append(d.Tags[c], t.Value)
	}
	return d
}

func designResponse(d preference.Design) response_models.DesignResponse {
	tags := make(map[string][]string, len(d.Tags))
	for c, values := range d.Tags {
		tags[string(c)] = values
	}
	return response_models.DesignResponse{
		ID:       d.ID,
		Name:     d.Name,
		Image:    d.Image,
		Category: d.Category,
		Tags:     tags,
		Colors:   d.Colors,
	}
}
