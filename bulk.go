// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl

import (
	"github.com/siemens/taasctl/api"
	log "github.com/sirupsen/logrus"
)

// DeleteAll deletes the resources of the given kind, identified by their
// names or IDs. It always works through the full list, even when resolving or
// deleting individual resources fails; such failures get logged. After the
// last resource has been attempted, DeleteAll returns a *BulkDeleteError if
// any deletion failed. There is no rollback of the deletions that succeeded.
func DeleteAll(client ResourceClient, kind api.Kind, namesOrIDs []string) error {
	resolver := NewResolver(client)
	failed := 0
	for _, nameOrID := range namesOrIDs {
		if err := deleteOne(client, resolver, kind, nameOrID); err != nil {
			failed++
			log.Errorf("Failed to delete %s with name or ID '%s': %s",
				kind.Noun(), nameOrID, err.Error())
		}
	}
	if failed > 0 {
		return &BulkDeleteError{Kind: kind, Failed: failed, Total: len(namesOrIDs)}
	}
	return nil
}

func deleteOne(client ResourceClient, resolver *Resolver, kind api.Kind, nameOrID string) error {
	id, err := resolver.Resolve(kind, nameOrID)
	if err != nil {
		return err
	}
	log.Debugf("deleting %s %s", kind.Noun(), id)
	return client.Delete(kind, id)
}
