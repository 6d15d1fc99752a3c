package dto

import (
	"assemblyStatApp/internal/domain/model"
)

// Default input files shipped with the simulator. Requests may name any of
// the four explicitly; omitted fields fall back to these.
const (
	DefaultStationsFile1      = "data/Stations1.txt"
	DefaultStationsFile2      = "data/Stations2.txt"
	DefaultCustomerOrdersFile = "data/CustomerOrders.txt"
	DefaultAssemblyLineFile   = "data/AssemblyLine.txt"
)

// SimulationRequestDTO is the request body for POST /simulation/run.
type SimulationRequestDTO struct {
	StationsFile1      string `json:"stations_file_1"`
	StationsFile2      string `json:"stations_file_2"`
	CustomerOrdersFile string `json:"customer_orders_file"`
	AssemblyLineFile   string `json:"assembly_line_file"`
}

// ToModel converts the request to a domain model, applying defaults for
// any omitted file.
func (d *SimulationRequestDTO) ToModel() model.SimulationRequest {
	return model.SimulationRequest{
		StationsFile1:      orDefault(d.StationsFile1, DefaultStationsFile1),
		StationsFile2:      orDefault(d.StationsFile2, DefaultStationsFile2),
		CustomerOrdersFile: orDefault(d.CustomerOrdersFile, DefaultCustomerOrdersFile),
		AssemblyLineFile:   orDefault(d.AssemblyLineFile, DefaultAssemblyLineFile),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// SimulationResultDTO is the response body for a successful run.
type SimulationResultDTO struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Output  string `json:"output"`
}

func FromSimulationResult(res *model.SimulationResult) *SimulationResultDTO {
	return &SimulationResultDTO{
		RunID:   res.RunID,
		Status:  res.Status,
		Message: "Simulation completed successfully",
		Output:  res.Output,
	}
}
