package dto

type NearbyPharmaciesRequest struct {
	CEP string `json:"cep" validate:"required"`
}

type Pharmacy struct {
	Nome      string `json:"nome"`
	Distancia string `json:"distancia"`
	Endereco  string `json:"endereco"`
	Telefone  string `json:"telefone"`
}

type NearbyPharmaciesResponse struct {
	Farmacias []Pharmacy `json:"farmacias"`
}
