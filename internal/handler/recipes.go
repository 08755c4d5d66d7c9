package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/recipe"
)

// HandleGetRecipes handles listing recipes with optional filters
// @Summary List recipes
// @Description List recipes, optionally filtered by profession, reachable skill level and tool level
// @Tags recipes
// @Produce json
// @Param profession query string false "Profession filter"
// @Param skill query int false "Maximum required skill level"
// @Param tool_level query int false "Maximum required tool level"
// @Success 200 {array} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Router /recipes [get]
func HandleGetRecipes(book *recipe.Book) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		profRaw := r.URL.Query().Get("profession")
		if profRaw == "" {
			recipes := book.All()
			log.Info("Recipes retrieved", "count", len(recipes))
			respondJSON(w, http.StatusOK, recipes)
			return
		}

		prof, ok := domain.ParseProfession(profRaw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidProfession, profRaw))
			return
		}

		recipes := book.ByProfession(prof)

		if skillRaw := r.URL.Query().Get("skill"); skillRaw != "" {
			skill, err := strconv.Atoi(skillRaw)
			if err != nil || skill < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSkill)
				return
			}
			recipes = book.FilterBySkill(prof, skill)
		}

		if toolRaw := r.URL.Query().Get("tool_level"); toolRaw != "" {
			toolLevel, err := strconv.Atoi(toolRaw)
			if err != nil || toolLevel < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidToolLevel)
				return
			}
			filtered := recipes[:0:0]
			for _, rec := range recipes {
				if rec.ToolLevel <= toolLevel {
					filtered = append(filtered, rec)
				}
			}
			recipes = filtered
		}

		log.Info("Recipes retrieved", "profession", prof, "count", len(recipes))

		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe handles getting one recipe by name
// @Summary Get one recipe
// @Description Get a single recipe with its material and requirement lists
// @Tags recipes
// @Produce json
// @Param name path string true "Recipe name"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{name} [get]
func HandleGetRecipe(book *recipe.Book) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}

		rec, ok := book.ByName(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgUnknownRecipeError)
			return
		}

		respondJSON(w, http.StatusOK, rec)
	}
}
