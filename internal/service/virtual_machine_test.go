package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
)

func TestCreateVM_CpuQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) {
		c.CpuMax = 4
		c.RamMax = 16384
		c.DiskSpaceMax = 1000
		c.TotalInstances = 10
	})
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	_, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "a", Cpu: 3, Ram: 1024, DiskSpace: 10,
	})
	require.NoError(t, err)

	// 3 + 2 would break the cap of 4, and nothing may be written
	_, err = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 2, Ram: 1024, DiskSpace: 10,
	})
	assert.ErrorIs(t, err, v1.ErrQuotaCpuExceeded)
	vms, err := env.vmRepo.ListByTeamID(ctx, teamId)
	require.NoError(t, err)
	assert.Len(t, vms, 1)

	// 3 + 1 fits exactly
	_, err = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 1, Ram: 1024, DiskSpace: 10,
	})
	require.NoError(t, err)

	detail, err := env.team.GetTeam(ctx, teamId)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.Quota.UsedCpu)
}

func TestCreateVM_QuotaDimensions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*model.Course)
		first   v1.CreateVMRequest
		second  v1.CreateVMRequest
		wantErr error
	}{
		{
			name:    "ram",
			mutate:  func(c *model.Course) { c.RamMax = 2048 },
			first:   v1.CreateVMRequest{Name: "a", Cpu: 1, Ram: 1536, DiskSpace: 10},
			second:  v1.CreateVMRequest{Name: "b", Cpu: 1, Ram: 1024, DiskSpace: 10},
			wantErr: v1.ErrQuotaRamExceeded,
		},
		{
			name:    "disk",
			mutate:  func(c *model.Course) { c.DiskSpaceMax = 50 },
			first:   v1.CreateVMRequest{Name: "a", Cpu: 1, Ram: 512, DiskSpace: 40},
			second:  v1.CreateVMRequest{Name: "b", Cpu: 1, Ram: 512, DiskSpace: 20},
			wantErr: v1.ErrQuotaDiskExceeded,
		},
		{
			name:    "instances",
			mutate:  func(c *model.Course) { c.TotalInstances = 1 },
			first:   v1.CreateVMRequest{Name: "a", Cpu: 1, Ram: 512, DiskSpace: 10},
			second:  v1.CreateVMRequest{Name: "b", Cpu: 1, Ram: 512, DiskSpace: 10},
			wantErr: v1.ErrQuotaInstancesExceeded,
		},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			course := env.seedCourse(t, tc.mutate)
			s1 := "qa" + string(rune('a'+i)) + "1"
			s2 := "qa" + string(rune('a'+i)) + "2"
			env.seedStudents(t, course, s1, s2)
			teamId := env.activeTeam(t, course, "team-"+tc.name, s1, s2)

			first := tc.first
			first.TeamId = teamId
			_, err := env.vm.CreateVM(ctx, s1, &first)
			require.NoError(t, err)

			second := tc.second
			second.TeamId = teamId
			_, err = env.vm.CreateVM(ctx, s1, &second)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateVM_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	_, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
	_, err = env.vm.CreateVM(ctx, "s2", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	assert.ErrorIs(t, err, v1.ErrDuplicateVMName)
}

func TestCreateVM_PendingTeamRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")

	data := env.propose(t, course, "rocket", "s1", "s2")
	_, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: data.Id, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	assert.ErrorIs(t, err, v1.ErrTeamNotActive)
}

func TestCreateVM_DisabledCourseRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	course.Enabled = false
	require.NoError(t, env.courseRepo.Update(ctx, course))

	_, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	assert.ErrorIs(t, err, v1.ErrCourseDisabled)
}

func TestCreateVM_Ownership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2", "s3")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	// creator must be a member
	_, err := env.vm.CreateVM(ctx, "s3", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	assert.ErrorIs(t, err, v1.ErrNotTeamMember)

	// declared owners must be members too
	_, err = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
		OwnerIds: []string{"s3"},
	})
	assert.ErrorIs(t, err, v1.ErrNotTeamMember)

	// owners default to the creator
	data, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, data.OwnerIds)

	isOwner, err := env.vmRepo.IsOwner(ctx, data.Id, "s1")
	require.NoError(t, err)
	assert.True(t, isOwner)
	isOwner, err = env.vmRepo.IsOwner(ctx, data.Id, "s2")
	require.NoError(t, err)
	assert.False(t, isOwner)
}

func TestResizeVM_ChecksDelta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) { c.CpuMax = 4 })
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	a, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "a", Cpu: 2, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
	b, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 2, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)

	// growing a from 2 to 3 would make 5 of 4
	err = env.vm.ResizeVM(ctx, "s1", a.Id, &v1.ResizeVMRequest{Cpu: 3, Ram: 512, DiskSpace: 5})
	assert.ErrorIs(t, err, v1.ErrQuotaCpuExceeded)

	// shrink a, then b can grow into the freed capacity
	require.NoError(t, env.vm.ResizeVM(ctx, "s1", a.Id, &v1.ResizeVMRequest{Cpu: 1, Ram: 512, DiskSpace: 5}))
	require.NoError(t, env.vm.ResizeVM(ctx, "s1", b.Id, &v1.ResizeVMRequest{Cpu: 3, Ram: 512, DiskSpace: 5}))

	detail, err := env.team.GetTeam(ctx, teamId)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.Quota.UsedCpu)
}

func TestStartStopVM_ActiveCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) { c.ActiveInstances = 1 })
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	a, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "a", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
	b, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)

	require.NoError(t, env.vm.StartVM(ctx, "s1", a.Id))
	// starting a running VM is a no-op
	require.NoError(t, env.vm.StartVM(ctx, "s1", a.Id))

	assert.ErrorIs(t, env.vm.StartVM(ctx, "s1", b.Id), v1.ErrQuotaActiveExceeded)

	require.NoError(t, env.vm.StopVM(ctx, "s1", a.Id))
	require.NoError(t, env.vm.StartVM(ctx, "s1", b.Id))

	detail, err := env.team.GetTeam(ctx, teamId)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Quota.ActiveCount)
}

func TestAddVMOwners(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	vm, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "box", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)

	// non-owners cannot mutate the VM
	err = env.vm.ResizeVM(ctx, "s2", vm.Id, &v1.ResizeVMRequest{Cpu: 2, Ram: 512, DiskSpace: 5})
	assert.ErrorIs(t, err, v1.ErrNotVMOwner)

	require.NoError(t, env.vm.AddVMOwners(ctx, "s1", vm.Id, &v1.AddVMOwnersRequest{OwnerIds: []string{"s2"}}))
	require.NoError(t, env.vm.ResizeVM(ctx, "s2", vm.Id, &v1.ResizeVMRequest{Cpu: 2, Ram: 512, DiskSpace: 5}))

	// adding an existing owner again is a no-op
	require.NoError(t, env.vm.AddVMOwners(ctx, "s1", vm.Id, &v1.AddVMOwnersRequest{OwnerIds: []string{"s2"}}))
	owners, err := env.vmRepo.ListOwners(ctx, vm.Id)
	require.NoError(t, err)
	assert.Len(t, owners, 2)

	err = env.vm.AddVMOwners(ctx, "s1", vm.Id, &v1.AddVMOwnersRequest{OwnerIds: []string{"ghost"}})
	assert.ErrorIs(t, err, v1.ErrStudentNotFound)
}

func TestDeleteVM_FreesQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) { c.TotalInstances = 1 })
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	vm, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "a", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
	_, err = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	assert.ErrorIs(t, err, v1.ErrQuotaInstancesExceeded)

	require.NoError(t, env.vm.DeleteVM(ctx, "s1", vm.Id))
	owners, err := env.vmRepo.ListOwners(ctx, vm.Id)
	require.NoError(t, err)
	assert.Empty(t, owners)

	_, err = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
		TeamId: teamId, Name: "b", Cpu: 1, Ram: 512, DiskSpace: 5,
	})
	require.NoError(t, err)
}

func TestCreateVM_ConcurrentInstanceQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) {
		c.CpuMax = 100
		c.RamMax = 100000
		c.DiskSpaceMax = 1000
		c.TotalInstances = 3
	})
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	// every request passes the check in isolation; under the team lock the
	// recount-then-write window admits exactly the cap, no matter how the
	// callers interleave
	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
				TeamId: teamId, Name: fmt.Sprintf("box-%d", i), Cpu: 1, Ram: 512, DiskSpace: 5,
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < callers; i++ {
		if errs[i] == nil {
			created++
			continue
		}
		assert.ErrorIs(t, errs[i], v1.ErrQuotaInstancesExceeded)
	}
	assert.Equal(t, 3, created)
	vms, err := env.vmRepo.ListByTeamID(ctx, teamId)
	require.NoError(t, err)
	assert.Len(t, vms, 3)
}

func TestStartVM_ConcurrentActiveCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t, func(c *model.Course) {
		c.TotalInstances = 4
		c.ActiveInstances = 2
	})
	env.seedStudents(t, course, "s1", "s2")
	teamId := env.activeTeam(t, course, "rocket", "s1", "s2")

	vmIds := make([]int64, 4)
	for i := range vmIds {
		vm, err := env.vm.CreateVM(ctx, "s1", &v1.CreateVMRequest{
			TeamId: teamId, Name: fmt.Sprintf("box-%d", i), Cpu: 1, Ram: 512, DiskSpace: 5,
		})
		require.NoError(t, err)
		vmIds[i] = vm.Id
	}

	var wg sync.WaitGroup
	errs := make([]error, len(vmIds))
	for i, id := range vmIds {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			errs[i] = env.vm.StartVM(ctx, "s1", id)
		}(i, id)
	}
	wg.Wait()

	started := 0
	for i := range errs {
		if errs[i] == nil {
			started++
			continue
		}
		assert.ErrorIs(t, errs[i], v1.ErrQuotaActiveExceeded)
	}
	assert.Equal(t, 2, started)

	vms, err := env.vmRepo.ListByTeamID(ctx, teamId)
	require.NoError(t, err)
	active := 0
	for _, vm := range vms {
		if vm.Active {
			active++
		}
	}
	assert.Equal(t, 2, active)
}
