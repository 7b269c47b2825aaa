package metadomain

// Cursors e Paging seguem o envelope de paginação do Graph API.
// Next vem absoluto e pronto para ser seguido até esgotar.
type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Objective       string `json:"objective"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
}

type AdSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CampaignID      string `json:"campaign_id"`
	EffectiveStatus string `json:"effective_status"`
}

type Creative struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

type Ad struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AdSetID         string   `json:"adset_id"`
	CampaignID      string   `json:"campaign_id"`
	Creative        Creative `json:"creative"`
	EffectiveStatus string   `json:"effective_status"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightEntry é a linha crua de métricas devolvida pelo endpoint /insights.
// Os campos numéricos chegam como strings e são convertidos no integrator.
type InsightEntry struct {
	AccountID   string   `json:"account_id"`
	CampaignID  string   `json:"campaign_id"`
	AdSetID     string   `json:"adset_id"`
	AdID        string   `json:"ad_id"`
	Spend       string   `json:"spend"`
	Actions     []Action `json:"actions"`
	Clicks      string   `json:"clicks"`
	Impressions string   `json:"impressions"`
	CTR         string   `json:"ctr"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}
