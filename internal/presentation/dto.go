package presentation

import (
	"github.com/zjrosen/areacalc/internal/shape"
	"github.com/zjrosen/areacalc/internal/users"
)

// ShapeDTO represents a catalog entry for presentation
type ShapeDTO struct {
	Index      int            `json:"index" yaml:"index"`
	Name       string         `json:"name" yaml:"name"`
	Parameters []ParameterDTO `json:"parameters" yaml:"parameters"`
	CrossCheck bool           `json:"cross_check" yaml:"cross_check"` // has a post-read validator
}

// ParameterDTO represents a shape parameter
type ParameterDTO struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	Min  int    `json:"min,omitempty" yaml:"min,omitempty"`
}

// FromDomainShapes converts catalog definitions to DTOs, numbering them from 1.
func FromDomainShapes(defs []shape.Definition) []ShapeDTO {
	dtos := make([]ShapeDTO, len(defs))
	for i, def := range defs {
		params := make([]ParameterDTO, len(def.Params))
		for j, p := range def.Params {
			params[j] = ParameterDTO{Name: p.Name, Kind: p.Kind.String()}
			if p.Kind == shape.IntAtLeast {
				params[j].Min = p.Min
			}
		}
		dtos[i] = ShapeDTO{
			Index:      i + 1,
			Name:       def.Name,
			Parameters: params,
			CrossCheck: def.Check != nil,
		}
	}
	return dtos
}

// UserDTO represents a user record with its rendered messages
type UserDTO struct {
	users.User `yaml:",inline"`
	Info       string `json:"info" yaml:"info"`
	Login      string `json:"login" yaml:"login"`
	Logout     string `json:"logout" yaml:"logout"`
	Access     string `json:"access,omitempty" yaml:"access,omitempty"`
	HasAccess  bool   `json:"has_access" yaml:"has_access"`
}

// FromDomainUsers converts user records to DTOs.
func FromDomainUsers(list []users.User) []UserDTO {
	dtos := make([]UserDTO, len(list))
	for i, u := range list {
		access, ok := u.AccessDescription()
		dtos[i] = UserDTO{
			User:      u,
			Info:      u.Info(),
			Login:     u.Login(),
			Logout:    u.Logout(),
			Access:    access,
			HasAccess: ok,
		}
	}
	return dtos
}
