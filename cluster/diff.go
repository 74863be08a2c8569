package cluster

import (
	"sort"
	"strings"

	"github.com/helmdb/go-driver/model"
)

// Diff returns the difference of two cluster descriptions. A nil description
// is treated as one with no servers.
func Diff(old, new *model.Cluster) *DescDiff {
	var diff DescDiff

	oldServers := serverSorter(servers(old))
	newServers := serverSorter(servers(new))

	sort.Sort(oldServers)
	sort.Sort(newServers)

	i := 0
	j := 0
	for {
		if i < len(oldServers) && j < len(newServers) {
			comp := strings.Compare(string(oldServers[i].Addr), string(newServers[j].Addr))
			switch comp {
			case 1:
				//left is bigger than
				diff.AddedServers = append(diff.AddedServers, newServers[j])
				j++
			case -1:
				// right is bigger
				diff.RemovedServers = append(diff.RemovedServers, oldServers[i])
				i++
			case 0:
				i++
				j++
			}
		} else if i < len(oldServers) {
			diff.RemovedServers = append(diff.RemovedServers, oldServers[i])
			i++
		} else if j < len(newServers) {
			diff.AddedServers = append(diff.AddedServers, newServers[j])
			j++
		} else {
			break
		}
	}

	return &diff
}

// DescDiff is the difference between two cluster descriptions.
type DescDiff struct {
	AddedServers   []*model.Server
	RemovedServers []*model.Server
}

func servers(c *model.Cluster) []*model.Server {
	if c == nil {
		return nil
	}
	return c.Servers
}

type serverSorter []*model.Server

func (x serverSorter) Len() int      { return len(x) }
func (x serverSorter) Swap(i, j int) { x[i], x[j] = x[j], x[i] }
func (x serverSorter) Less(i, j int) bool {
	return strings.Compare(string(x[i].Addr), string(x[j].Addr)) < 0
}
