package assessments

import (
	"Backend-RODO-Panel/src/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Composer renders the nested chapter→area→requirement tree. The taxonomy
// is authoritative for shape and order; assessment data is a sparse overlay.
// A requirement added to the taxonomy after an assessment was filled in
// still shows up in that assessment's snapshot, with a blank answer.
type Composer struct {
	store Store
}

func NewComposer(store Store) *Composer {
	return &Composer{store: store}
}

// Template returns the blank form: every area and requirement present, all
// scores, values and comments empty.
func (c *Composer) Template(ctx context.Context) (*models.AssessmentDetail, error) {
	chapters, err := c.buildChapters(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	return &models.AssessmentDetail{
		Name:        "",
		Description: "",
		Status:      "DRAFT",
		Chapters:    chapters,
	}, nil
}

// Snapshot overlays one assessment's responses and area scores onto the
// tree. Both child collections are fetched once and indexed in memory, so
// the traversal itself does no lookups per node.
func (c *Composer) Snapshot(ctx context.Context, a *models.Assessment) (*models.AssessmentDetail, error) {
	scores, err := c.store.ListAreaScores(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	responses, err := c.store.ListResponses(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	scoreByArea := make(map[primitive.ObjectID]models.AreaScore, len(scores))
	for _, s := range scores {
		scoreByArea[s.AreaID] = s
	}
	respByReq := make(map[primitive.ObjectID]models.Response, len(responses))
	for _, r := range responses {
		respByReq[r.RequirementID] = r
	}

	chapters, err := c.buildChapters(ctx, scoreByArea, respByReq)
	if err != nil {
		return nil, err
	}

	createdAt := a.CreatedAt
	updatedAt := a.UpdatedAt
	return &models.AssessmentDetail{
		ID:          a.ID.Hex(),
		Name:        a.Name,
		Description: a.Description,
		Status:      a.Status,
		CreatedAt:   &createdAt,
		UpdatedAt:   &updatedAt,
		Chapters:    chapters,
	}, nil
}

// buildChapters walks the taxonomy top to bottom. Nil overlay maps produce
// the blank template.
func (c *Composer) buildChapters(ctx context.Context, scoreByArea map[primitive.ObjectID]models.AreaScore, respByReq map[primitive.ObjectID]models.Response) ([]models.ChapterNode, error) {
	chapters, err := c.store.ListChapters(ctx)
	if err != nil {
		return nil, err
	}

	chapterNodes := make([]models.ChapterNode, 0, len(chapters))
	for _, chapter := range chapters {
		areas, err := c.store.ListAreasByChapter(ctx, chapter.ID)
		if err != nil {
			return nil, err
		}

		areaNodes := make([]models.AreaNode, 0, len(areas))
		for _, area := range areas {
			node := models.AreaNode{
				ID:          area.ID.Hex(),
				Name:        area.Name,
				Description: area.Description,
				OrderNumber: area.OrderNumber,
				Score:       models.StrPtr(""),
				Comment:     "",
			}
			if s, ok := scoreByArea[area.ID]; ok {
				node.Score = models.StrPtr(s.Score)
				node.Comment = s.Comment
			}

			requirements, err := c.store.ListRequirementsByArea(ctx, area.ID)
			if err != nil {
				return nil, err
			}

			reqNodes := make([]models.RequirementNode, 0, len(requirements))
			for _, req := range requirements {
				reqNode := models.RequirementNode{
					ID:          req.ID.Hex(),
					Text:        req.Text,
					OrderNumber: req.OrderNumber,
					Value:       models.StrPtr(""),
					Comment:     "",
				}
				if r, ok := respByReq[req.ID]; ok {
					reqNode.Value = models.StrPtr(r.Value)
					reqNode.Comment = r.Comment
				}
				reqNodes = append(reqNodes, reqNode)
			}

			node.Requirements = reqNodes
			areaNodes = append(areaNodes, node)
		}

		chapterNodes = append(chapterNodes, models.ChapterNode{
			ID:          chapter.ID.Hex(),
			Name:        chapter.Name,
			Description: chapter.Description,
			OrderNumber: chapter.OrderNumber,
			Areas:       areaNodes,
		})
	}

	return chapterNodes, nil
}
