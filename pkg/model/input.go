package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// BalanceRequest carries one balancing problem. Field names follow the balancing endpoint's JSON body
type BalanceRequest struct {
	Ratings     []float64 `json:"ratings_list" mapstructure:"ratings_list" binding:"required"`
	Deviations  []float64 `json:"rds_list" mapstructure:"rds_list" binding:"required"`
	GameMode    string    `json:"gamemode" mapstructure:"gamemode" binding:"required"`
	Constraints string    `json:"constraints" mapstructure:"constraints"`
}

func RequestFromJson(file string) (BalanceRequest, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return BalanceRequest{}, fmt.Errorf("cannot read request file: %w", err)
	}
	return RequestFromJsonBytes(bytes)
}

func RequestFromJsonBytes(bytes []byte) (BalanceRequest, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return BalanceRequest{}, err
	}

	var request BalanceRequest
	if err := mapstructure.Decode(inputJson, &request); err != nil {
		return BalanceRequest{}, fmt.Errorf("cannot decode request: %w", err)
	}
	return request, nil
}
