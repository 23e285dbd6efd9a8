package controllers

import (
	"github.com/gin-gonic/gin"

	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// ListTagsHandler godoc
// @Summary Tag vocabulary
// @Description Distinct tags per category with the number of designs carrying each
// @Tags Tags
// @Produce json
// @Param category query string false "Restrict to one category"
// @Success 200 {object} utils.APIResponse
// @Router /tags [get]
func (tc *TagController) ListTagsHandler(c *gin.Context) {
	tags, err := tc.tagService.GetTagVocabulary(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}
