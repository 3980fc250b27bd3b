package handler

import (
	"github.com/gin-gonic/gin"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/navigation"
	"observer-portal/backend/pkg/response"
)

// NavigationHandler serves the sidebar menu and the navigation state
// machine. The SPA keeps the current selection and posts each action here;
// the handler returns the next selection, the view to mount, and any side
// effect.
type NavigationHandler struct {
	links *config.LinksConfig
}

// NewNavigationHandler creates a NavigationHandler.
func NewNavigationHandler(links *config.LinksConfig) *NavigationHandler {
	return &NavigationHandler{links: links}
}

// navigationState is the resolved state returned after every dispatch.
type navigationState struct {
	Selection navigation.Selection `json:"selection"`
	View      navigation.View      `json:"view"`
	EmbedURL  string               `json:"embed_url,omitempty"`
	Effect    navigation.Effect    `json:"effect"`
}

func resolved(sel navigation.Selection, effect navigation.Effect) navigationState {
	view, embedURL := navigation.Resolve(sel)
	return navigationState{
		Selection: sel,
		View:      view,
		EmbedURL:  embedURL,
		Effect:    effect,
	}
}

// Menu returns the sidebar definition.
// GET /api/v1/navigation/menu
func (h *NavigationHandler) Menu(c *gin.Context) {
	response.OK(c, navigation.BuildMenu(h.links))
}

// Initial returns the landing state.
// GET /api/v1/navigation
func (h *NavigationHandler) Initial(c *gin.Context) {
	response.OK(c, resolved(navigation.Default(), navigation.Effect{Kind: navigation.EffectNone}))
}

// dispatchRequest is one navigation action: either selecting a named view
// or opening a link against the current selection.
type dispatchRequest struct {
	Current navigation.Selection `json:"current"`
	Select  string               `json:"select,omitempty"`
	Open    *navigation.Link     `json:"open,omitempty"`
}

// Dispatch applies one action and returns the resolved state.
// POST /api/v1/navigation/dispatch
func (h *NavigationHandler) Dispatch(c *gin.Context) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "invalid navigation action")
		return
	}

	switch {
	case req.Open != nil:
		sel, effect := navigation.Open(req.Current, *req.Open)
		response.OK(c, resolved(sel, effect))
	case req.Select != "":
		response.OK(c, resolved(navigation.SelectView(req.Select), navigation.Effect{Kind: navigation.EffectNone}))
	default:
		response.BadRequest(c, 17001, "invalid navigation action")
	}
}
