package jtd

// ValidateSelf is the semantic check, C3 (spec section 4.3, section 6.2:
// Schema::validate_self). It assumes s already decoded cleanly through
// FromJSON — every field holds its declared Go type — and checks the
// cross-field and content rules a single decode pass can't: ref targets,
// key disjointness, the form-signature table, and the mapping/discriminator
// consistency rules.
//
// It walks the whole tree in one recursive pass and returns the first fault
// it finds; spec section 7.1 makes no promise about which fault wins when a
// schema breaks more than one rule, so first-found is as good as any order.
func (s *Schema) ValidateSelf() error {
	return check(s, s, nil)
}

func check(node, root *Schema, path []string) error {
	if node.Definitions != nil && node != root {
		return newSchemaError(KindNonRootDefinitions, path)
	}

	if node.Ref != nil {
		if root.Definitions == nil {
			return newSchemaError(KindRefNoDefinitions, path)
		}
		if !root.Definitions.Has(*node.Ref) {
			return newSchemaError(KindRefUnresolved, path)
		}
	}

	if node.Type != nil {
		if _, ok := validTypeTags[*node.Type]; !ok {
			return newSchemaFieldError(KindTypeInvariant, keywordType, path)
		}
	}

	if node.Enum != nil {
		if len(node.Enum) == 0 {
			return newSchemaError(KindEnumEmpty, path)
		}
		seen := make(map[string]struct{}, len(node.Enum))
		for _, v := range node.Enum {
			if _, dup := seen[v]; dup {
				return newSchemaError(KindEnumDuplicate, path)
			}
			seen[v] = struct{}{}
		}
	}

	if node.Properties != nil && node.OptionalProperties != nil {
		for _, k := range node.Properties.Keys() {
			if node.OptionalProperties.Has(k) {
				return newSchemaError(KindPropOptPropOverlap, path)
			}
		}
	}

	if node.Discriminator != nil && node.Mapping != nil {
		for _, k := range node.Mapping.Keys() {
			mapped, _ := node.Mapping.Get(k)
			if mapped.Nullable != nil && *mapped.Nullable {
				return newSchemaError(KindMappingNullable, append(path, keywordMapping, k))
			}
			if mapped.Form() != FormProperties {
				return newSchemaError(KindMappingNotPropertiesForm, append(path, keywordMapping, k))
			}
			if mapped.Properties != nil && mapped.Properties.Has(*node.Discriminator) {
				return newSchemaError(KindMappingRedefinesDiscriminator, append(path, keywordMapping, k))
			}
			if mapped.OptionalProperties != nil && mapped.OptionalProperties.Has(*node.Discriminator) {
				return newSchemaError(KindMappingRedefinesDiscriminator, append(path, keywordMapping, k))
			}
		}
	}

	if !isValidFormSignature(node.formSignature()) {
		return newSchemaError(KindInvalidForm, path)
	}

	if node.Elements != nil {
		if err := check(node.Elements, root, append(path, keywordElements)); err != nil {
			return err
		}
	}
	if node.Values != nil {
		if err := check(node.Values, root, append(path, keywordValues)); err != nil {
			return err
		}
	}
	if node.Properties != nil {
		for _, k := range node.Properties.Keys() {
			sub, _ := node.Properties.Get(k)
			if err := check(sub, root, append(path, keywordProperties, k)); err != nil {
				return err
			}
		}
	}
	if node.OptionalProperties != nil {
		for _, k := range node.OptionalProperties.Keys() {
			sub, _ := node.OptionalProperties.Get(k)
			if err := check(sub, root, append(path, keywordOptionalProperties, k)); err != nil {
				return err
			}
		}
	}
	if node.Mapping != nil {
		for _, k := range node.Mapping.Keys() {
			sub, _ := node.Mapping.Get(k)
			if err := check(sub, root, append(path, keywordMapping, k)); err != nil {
				return err
			}
		}
	}
	if node == root && node.Definitions != nil {
		for _, k := range node.Definitions.Keys() {
			sub, _ := node.Definitions.Get(k)
			if err := check(sub, root, append(path, keywordDefinitions, k)); err != nil {
				return err
			}
		}
	}

	return nil
}

func isValidFormSignature(sig [10]bool) bool {
	for _, v := range validFormSignatures {
		if v == sig {
			return true
		}
	}
	return false
}
