package model

// ModelName is the closed set of machine learning model names accepted
// by the models route. Any other path value fails validation before the
// handler runs (`oneof` tag on the request type).
type ModelName string

const (
	ModelNameAlexNet ModelName = "alexnet"
	ModelNameResNet  ModelName = "resnet"
	ModelNameLeNet   ModelName = "lenet"
)

// ModelNames lists every ModelName variant. Used by the oneof
// constraint and the meta document; adding a variant here forces a
// review of the models handler switch.
func ModelNames() []ModelName {
	return []ModelName{ModelNameAlexNet, ModelNameResNet, ModelNameLeNet}
}

// Tag is the closed set of documentation groups routes belong to.
// Tags never validate data; they only group operations in the meta
// document.
type Tag string

const (
	TagItems     Tag = "items"
	TagItemTitle Tag = "itemtitle"
	TagItemList  Tag = "itemlist"
	TagUsers     Tag = "users"
	TagModels    Tag = "models"
)

// Tags lists every Tag in documentation display order: the described
// groups first, then the rest.
func Tags() []Tag {
	return []Tag{TagUsers, TagItems, TagItemTitle, TagItemList, TagModels}
}

// Description returns the documentation blurb for a tag group, empty
// for tags that have none.
func (t Tag) Description() string {
	switch t {
	case TagUsers:
		return "Operations with users. The **login** logic is also here."
	case TagItems:
		return "Manage items. So _fancy_ they have their own docs."
	case TagItemTitle, TagItemList, TagModels:
		return ""
	}
	return ""
}
