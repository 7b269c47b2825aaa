package domain

// ObjectiveCategory é a categoria fechada de objetivo de uma campanha.
// A categoria decide qual métrica de custo se aplica (CPL ou CPC).
type ObjectiveCategory string

const (
	ObjectiveLeadGeneration ObjectiveCategory = "LEAD_GENERATION"
	ObjectiveTraffic        ObjectiveCategory = "TRAFFIC"
	ObjectiveOther          ObjectiveCategory = "OTHER"
)

// KnownObjectiveCategories lista as categorias aceitas na validação da configuração
var KnownObjectiveCategories = []ObjectiveCategory{
	ObjectiveLeadGeneration,
	ObjectiveTraffic,
	ObjectiveOther,
}

// DefaultObjectiveCategoryMap mapeia o valor cru de "objective" da API
// para a categoria interna. Valores não mapeados caem em OTHER, que
// usa custo por lead como as campanhas de engajamento.
var DefaultObjectiveCategoryMap = map[string]ObjectiveCategory{
	"OUTCOME_ENGAGEMENT": ObjectiveLeadGeneration,
	"MESSAGES":           ObjectiveLeadGeneration,
	"LEAD_GENERATION":    ObjectiveLeadGeneration,
	"OUTCOME_LEADS":      ObjectiveLeadGeneration,
	"OUTCOME_TRAFFIC":    ObjectiveTraffic,
	"LINK_CLICKS":        ObjectiveTraffic,
	"OUTCOME_SALES":      ObjectiveOther,
	"OUTCOME_AWARENESS":  ObjectiveOther,
}

type Campaign struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	RawObjective string            `json:"objective"`
	Category     ObjectiveCategory `json:"category"`
}

type AdSet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CampaignID string `json:"campaign_id"`
}

type Ad struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	AdSetID              string `json:"adset_id"`
	CampaignID           string `json:"campaign_id"`
	CreativeThumbnailURL string `json:"creative_thumbnail_url"`
}

// Catalog indexa as entidades ativas de uma conta por ID.
// Construído do zero a cada execução do relatório.
type Catalog struct {
	Campaigns map[string]*Campaign
	AdSets    map[string]*AdSet
	Ads       []*Ad
}

// AdByID devolve o índice de anúncios por ID
func (c *Catalog) AdByID() map[string]*Ad {
	index := make(map[string]*Ad, len(c.Ads))
	for _, ad := range c.Ads {
		index[ad.ID] = ad
	}
	return index
}

// AdIDs devolve os IDs de todos os anúncios do catálogo, na ordem de listagem
func (c *Catalog) AdIDs() []string {
	ids := make([]string, 0, len(c.Ads))
	for _, ad := range c.Ads {
		ids = append(ids, ad.ID)
	}
	return ids
}
