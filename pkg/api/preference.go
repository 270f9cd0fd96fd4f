package api

type Preference struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt int64  `json:"updated_at"`
}

type SetPreferenceRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SetPreferenceResponse struct {
	Preference *Preference `json:"preference"`
}

type GetPreferenceRequest struct {
	Key string `json:"key"`
}

type GetPreferenceResponse struct {
	Preference *Preference `json:"preference"`
}

type ListPreferencesRequest struct{}

type ListPreferencesResponse struct {
	Preferences []*Preference `json:"preferences"`
}

type DeletePreferenceRequest struct {
	Key string `json:"key"`
}

type DeletePreferenceResponse struct{}
