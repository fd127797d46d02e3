package model

func ptrUint(v uint64) *uint64 { return &v }

func ptrFloat(v float64) *float64 { return &v }

// ResourceFields returns the fields every Kubernetes resource carries.
func ResourceFields() []Field {
	return []Field{
		{
			Name:     "apiVersion",
			Type:     TypeString,
			Optional: true,
			Description: `
				APIVersion defines the versioned schema of this representation of an object.
				Servers should convert recognized schemas to the latest internal value, and may
				reject unrecognized values. More info:
				https://git.k8s.io/community/contributors/devel/sig-architecture/api-conventions.md#resources
			`,
		},
		{
			Name:     "kind",
			Type:     TypeString,
			Optional: true,
			Description: `
				Kind is a string value representing the REST resource this object represents.
				Servers may infer this from the endpoint the client submits requests to.
				Cannot be updated. In CamelCase. More info:
				https://git.k8s.io/community/contributors/devel/sig-architecture/api-conventions.md#types-kinds
			`,
		},
		{
			Name:     "metadata",
			Type:     TypeObject,
			Optional: true,
		},
	}
}

// Condition returns the descriptor of the standard Kubernetes status
// condition. It is always available as a reference target.
func Condition() *Model {
	return &Model{
		Kind: KindModel,
		Name: "Condition",
		Description: `
			Condition contains details for one aspect of the current state of this API Resource.
		`,
		Fields: []Field{
			{
				Name: "lastTransitionTime",
				Type: TypeDateTime,
				Description: `
					lastTransitionTime is the last time the condition
					transitioned from one status to another. This should be when
					the underlying condition changed.  If that is not known, then
					using the time when the API field changed is acceptable.
				`,
			},
			{
				Name:      "message",
				Type:      TypeString,
				MaxLength: ptrUint(32768),
				Description: `
					message is a human readable message indicating
					details about the transition. This may be an empty string.
				`,
			},
			{
				Name:     "observedGeneration",
				Type:     TypeInteger,
				Optional: true,
				Minimum:  ptrFloat(0),
				Format:   "int64",
				Description: `
					observedGeneration represents the .metadata.generation
					that the condition was set based upon. For instance, if .metadata.generation
					is currently 12, but the .status.conditions[x].observedGeneration
					is 9, the condition is out of date with respect to the current
					state of the instance.
				`,
			},
			{
				Name:      "reason",
				Type:      TypeString,
				MaxLength: ptrUint(1024),
				MinLength: ptrUint(1),
				Pattern:   `^[A-Za-z]([A-Za-z0-9_,:]*[A-Za-z0-9_])?$`,
				Description: `
					reason contains a programmatic identifier indicating
					the reason for the condition's last transition. Producers
					of specific condition types may define expected values and
					meanings for this field, and whether the values are considered
					a guaranteed API. The value should be a CamelCase string.
					This field may not be empty.
				`,
			},
			{
				Name: "status",
				Type: TypeString,
				Enum: []string{"True", "False", "Unknown"},
				Description: `
					status of the condition, one of True, False, Unknown.
				`,
			},
			{
				Name:      "type",
				Type:      TypeString,
				MaxLength: ptrUint(316),
				Pattern:   `^([a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*/)?(([A-Za-z0-9][-A-Za-z0-9_.]*)?[A-Za-z0-9])$`,
				Description: `
					type of condition in CamelCase or in foo.example.com/CamelCase.
					--- Many .condition.type values are consistent across resources
					like Available, but because arbitrary conditions can be useful
					(see .node.status.conditions), the ability to deconflict is
					important. The regex it matches is (dns1123SubdomainFmt/)?(qualifiedNameFmt)
				`,
			},
		},
	}
}
