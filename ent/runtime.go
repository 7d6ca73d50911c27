// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/department"
	"memberhub.io/memberhub/ent/group"
	"memberhub.io/memberhub/ent/member"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deliveryrecordMixin := schema.DeliveryRecord{}.Mixin()
	deliveryrecordMixinFields0 := deliveryrecordMixin[0].Fields()
	_ = deliveryrecordMixinFields0
	deliveryrecordFields := schema.DeliveryRecord{}.Fields()
	_ = deliveryrecordFields
	// deliveryrecordDescCreatedAt is the schema descriptor for created_at field.
	deliveryrecordDescCreatedAt := deliveryrecordMixinFields0[0].Descriptor()
	// deliveryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliveryrecord.DefaultCreatedAt = deliveryrecordDescCreatedAt.Default.(func() time.Time)
	// deliveryrecordDescRecipientID is the schema descriptor for recipient_id field.
	deliveryrecordDescRecipientID := deliveryrecordFields[2].Descriptor()
	// deliveryrecord.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	deliveryrecord.RecipientIDValidator = deliveryrecordDescRecipientID.Validators[0].(func(string) error)
	// deliveryrecordDescIsRead is the schema descriptor for is_read field.
	deliveryrecordDescIsRead := deliveryrecordFields[3].Descriptor()
	// deliveryrecord.DefaultIsRead holds the default value on creation for the is_read field.
	deliveryrecord.DefaultIsRead = deliveryrecordDescIsRead.Default.(bool)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields0[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields0[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[1].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = func() func(string) error {
		validators := departmentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	groupMixin := schema.Group{}.Mixin()
	groupMixinFields0 := groupMixin[0].Fields()
	_ = groupMixinFields0
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupMixinFields0[0].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupMixinFields0[1].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	memberMixin := schema.Member{}.Mixin()
	memberMixinFields0 := memberMixin[0].Fields()
	_ = memberMixinFields0
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescCreatedAt is the schema descriptor for created_at field.
	memberDescCreatedAt := memberMixinFields0[0].Descriptor()
	// member.DefaultCreatedAt holds the default value on creation for the created_at field.
	member.DefaultCreatedAt = memberDescCreatedAt.Default.(func() time.Time)
	// memberDescUpdatedAt is the schema descriptor for updated_at field.
	memberDescUpdatedAt := memberMixinFields0[1].Descriptor()
	// member.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	member.DefaultUpdatedAt = memberDescUpdatedAt.Default.(func() time.Time)
	// member.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	member.UpdateDefaultUpdatedAt = memberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// memberDescDisplayName is the schema descriptor for display_name field.
	memberDescDisplayName := memberFields[1].Descriptor()
	// member.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	member.DisplayNameValidator = func() func(string) error {
		validators := memberDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// memberDescMemberType is the schema descriptor for member_type field.
	memberDescMemberType := memberFields[2].Descriptor()
	// member.MemberTypeValidator is a validator for the "member_type" field. It is called by the builders before save.
	member.MemberTypeValidator = memberDescMemberType.Validators[0].(func(string) error)
	notificationdefinitionMixin := schema.NotificationDefinition{}.Mixin()
	notificationdefinitionMixinFields0 := notificationdefinitionMixin[0].Fields()
	_ = notificationdefinitionMixinFields0
	notificationdefinitionFields := schema.NotificationDefinition{}.Fields()
	_ = notificationdefinitionFields
	// notificationdefinitionDescCreatedAt is the schema descriptor for created_at field.
	notificationdefinitionDescCreatedAt := notificationdefinitionMixinFields0[0].Descriptor()
	// notificationdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationdefinition.DefaultCreatedAt = notificationdefinitionDescCreatedAt.Default.(func() time.Time)
	// notificationdefinitionDescTitle is the schema descriptor for title field.
	notificationdefinitionDescTitle := notificationdefinitionFields[1].Descriptor()
	// notificationdefinition.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notificationdefinition.TitleValidator = func() func(string) error {
		validators := notificationdefinitionDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationdefinitionDescMessage is the schema descriptor for message field.
	notificationdefinitionDescMessage := notificationdefinitionFields[2].Descriptor()
	// notificationdefinition.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notificationdefinition.MessageValidator = func() func(string) error {
		validators := notificationdefinitionDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	notificationinstanceMixin := schema.NotificationInstance{}.Mixin()
	notificationinstanceMixinFields0 := notificationinstanceMixin[0].Fields()
	_ = notificationinstanceMixinFields0
	notificationinstanceFields := schema.NotificationInstance{}.Fields()
	_ = notificationinstanceFields
	// notificationinstanceDescCreatedAt is the schema descriptor for created_at field.
	notificationinstanceDescCreatedAt := notificationinstanceMixinFields0[0].Descriptor()
	// notificationinstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationinstance.DefaultCreatedAt = notificationinstanceDescCreatedAt.Default.(func() time.Time)
	// notificationinstanceDescFailure is the schema descriptor for failure field.
	notificationinstanceDescFailure := notificationinstanceFields[5].Descriptor()
	// notificationinstance.FailureValidator is a validator for the "failure" field. It is called by the builders before save.
	notificationinstance.FailureValidator = notificationinstanceDescFailure.Validators[0].(func(string) error)
}
