package response_models

type DesignResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name,omitempty"`
	Image    string              `json:"image,omitempty"`
	Category string              `json:"category,omitempty"`
	Tags     map[string][]string `json:"tags"`
	Colors   []string            `json:"colors,omitempty"`
}

type DesignPage struct {
	Items    []DesignResponse `json:"items"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
}

type TagUsageResponse struct {
	Tag     string `json:"tag"`
	Designs int    `json:"designs"`
}

type TagCategoryResponse struct {
	Category    string             `json:"category"`
	DisplayName string             `json:"displayName"`
	Tags        []TagUsageResponse `json:"tags"`
}
