package scenarios

type ScenarioListResponse struct {
	Scenarios []Scenario `json:"scenarios"`
	Count     int        `json:"count"`
}
