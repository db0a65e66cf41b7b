// Package yamlrepo loads the authorized-personnel forest from YAML files.
// The nested head_of structure of the personnel hierarchy maps directly onto
// YAML nesting.
package yamlrepo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stockroom/pkg/domain/entities"
)

type personnelNode struct {
	UserName string          `yaml:"user_name"`
	Password string          `yaml:"password"`
	HeadOf   []personnelNode `yaml:"head_of"`
}

type personnelDoc struct {
	Personnel []personnelNode `yaml:"personnel"`
}

// LoadPersonnel loads the personnel forest from a YAML file of the form:
//
//	personnel:
//	  - user_name: jeremy
//	    password: coppernickel
//	    head_of:
//	      - user_name: salvador
//	        password: selvashine
func LoadPersonnel(filename string) ([]*entities.PersonnelMember, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open personnel file %s: %w", filename, err)
	}

	var doc personnelDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse personnel YAML: %w", err)
	}
	if len(doc.Personnel) == 0 {
		return nil, fmt.Errorf("personnel file %s contains no members", filename)
	}

	forest := make([]*entities.PersonnelMember, 0, len(doc.Personnel))
	for i, node := range doc.Personnel {
		member, err := buildMember(node)
		if err != nil {
			return nil, fmt.Errorf("personnel entry %d: %w", i+1, err)
		}
		forest = append(forest, member)
	}
	return forest, nil
}

func buildMember(node personnelNode) (*entities.PersonnelMember, error) {
	if node.UserName == "" {
		return nil, fmt.Errorf("user_name cannot be empty")
	}
	if node.Password == "" {
		return nil, fmt.Errorf("member %q: password cannot be empty", node.UserName)
	}

	member := &entities.PersonnelMember{
		UserName: node.UserName,
		Password: node.Password,
	}
	for _, child := range node.HeadOf {
		subordinate, err := buildMember(child)
		if err != nil {
			return nil, fmt.Errorf("under %q: %w", node.UserName, err)
		}
		member.HeadOf = append(member.HeadOf, subordinate)
	}
	return member, nil
}
